package engine

import (
	"github.com/tendapp/tend/internal/models"
)

// metricValue extracts the metric a milestone is gated on.
func metricValue(m models.Milestone, metrics Metrics) int {
	switch m.Metric {
	case models.MetricTotalCompletions:
		return metrics.TotalCompletions
	case models.MetricBestStreak:
		return metrics.BestStreak
	case models.MetricHabitCount:
		return metrics.HabitCount
	case models.MetricReflectionCount:
		return metrics.ReflectionCount
	case models.MetricRecentPerfectDays:
		return metrics.RecentPerfectDays
	default:
		return 0
	}
}

// EvaluateMilestones tests every still-locked milestone against the given
// metrics and unlocks those whose threshold is met, stamping UnlockedAt with
// today. Already-unlocked milestones are never changed, so the evaluation is
// idempotent and the unlock is a one-way latch. The input slice is not
// mutated; the updated slice and the newly unlocked milestones are returned.
func EvaluateMilestones(milestones []models.Milestone, metrics Metrics, today string) ([]models.Milestone, []models.Milestone) {
	out := make([]models.Milestone, len(milestones))
	copy(out, milestones)

	var unlocked []models.Milestone
	for i, m := range out {
		if m.Unlocked {
			continue
		}
		if metricValue(m, metrics) >= m.Threshold {
			out[i].Unlocked = true
			out[i].UnlockedAt = today
			unlocked = append(unlocked, out[i])
		}
	}

	return out, unlocked
}
