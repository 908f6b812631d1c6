package engine

import (
	"testing"

	"github.com/tendapp/tend/internal/models"
)

func TestEvaluateMilestonesUnlock(t *testing.T) {
	milestones := []models.Milestone{
		{ID: "centurion", Metric: models.MetricTotalCompletions, Threshold: 100},
	}

	// One short of the threshold: stays locked.
	out, unlocked := EvaluateMilestones(milestones, Metrics{TotalCompletions: 99}, "2024-01-05")
	if out[0].Unlocked {
		t.Error("milestone unlocked at 99 completions, want locked")
	}
	if len(unlocked) != 0 {
		t.Errorf("len(unlocked) = %d, want 0", len(unlocked))
	}

	// Crossing the threshold unlocks and stamps the date.
	out, unlocked = EvaluateMilestones(out, Metrics{TotalCompletions: 100}, "2024-01-06")
	if !out[0].Unlocked {
		t.Error("milestone locked at 100 completions, want unlocked")
	}
	if out[0].UnlockedAt != "2024-01-06" {
		t.Errorf("UnlockedAt = %q, want 2024-01-06", out[0].UnlockedAt)
	}
	if len(unlocked) != 1 {
		t.Errorf("len(unlocked) = %d, want 1", len(unlocked))
	}

	// Metric regression never re-locks, and the stamp is untouched.
	out, unlocked = EvaluateMilestones(out, Metrics{TotalCompletions: 12}, "2024-02-01")
	if !out[0].Unlocked {
		t.Error("milestone re-locked after metric regression")
	}
	if out[0].UnlockedAt != "2024-01-06" {
		t.Errorf("UnlockedAt = %q after regression, want 2024-01-06", out[0].UnlockedAt)
	}
	if len(unlocked) != 0 {
		t.Errorf("len(unlocked) = %d after regression, want 0", len(unlocked))
	}
}

func TestEvaluateMilestonesIdempotent(t *testing.T) {
	milestones := []models.Milestone{
		{ID: "first-step", Metric: models.MetricTotalCompletions, Threshold: 1},
		{ID: "week-warrior", Metric: models.MetricBestStreak, Threshold: 7},
	}
	metrics := Metrics{TotalCompletions: 3, BestStreak: 2}

	once, _ := EvaluateMilestones(milestones, metrics, "2024-01-05")
	twice, unlocked := EvaluateMilestones(once, metrics, "2024-01-05")

	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("milestone %s changed on re-evaluation: %+v vs %+v",
				once[i].ID, once[i], twice[i])
		}
	}
	if len(unlocked) != 0 {
		t.Errorf("re-evaluation reported %d new unlocks, want 0", len(unlocked))
	}
}

func TestEvaluateMilestonesDoesNotMutateInput(t *testing.T) {
	milestones := []models.Milestone{
		{ID: "first-step", Metric: models.MetricTotalCompletions, Threshold: 1},
	}

	_, _ = EvaluateMilestones(milestones, Metrics{TotalCompletions: 5}, "2024-01-05")
	if milestones[0].Unlocked {
		t.Error("EvaluateMilestones mutated its input slice")
	}
}

func TestEvaluateMilestonesAllMetrics(t *testing.T) {
	metrics := Metrics{
		TotalCompletions:  50,
		BestStreak:        10,
		HabitCount:        5,
		ReflectionCount:   12,
		RecentPerfectDays: 3,
	}

	tests := []struct {
		name      string
		metric    models.MilestoneMetric
		threshold int
		want      bool
	}{
		{"total completions met", models.MetricTotalCompletions, 50, true},
		{"best streak met", models.MetricBestStreak, 7, true},
		{"habit count met", models.MetricHabitCount, 5, true},
		{"reflection count met", models.MetricReflectionCount, 10, true},
		{"recent perfect days not met", models.MetricRecentPerfectDays, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := []models.Milestone{{ID: "m", Metric: tt.metric, Threshold: tt.threshold}}
			out, _ := EvaluateMilestones(ms, metrics, "2024-01-05")
			if out[0].Unlocked != tt.want {
				t.Errorf("Unlocked = %v, want %v", out[0].Unlocked, tt.want)
			}
		})
	}
}
