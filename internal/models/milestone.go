package models

// MilestoneMetric names the aggregate metric a milestone threshold is
// compared against.
type MilestoneMetric string

const (
	MetricTotalCompletions  MilestoneMetric = "total_completions"
	MetricBestStreak        MilestoneMetric = "best_streak"
	MetricHabitCount        MilestoneMetric = "habit_count"
	MetricReflectionCount   MilestoneMetric = "reflection_count"
	MetricRecentPerfectDays MilestoneMetric = "recent_perfect_days"
)

// Milestone is a one-way achievement: once Unlocked flips true it never
// flips back, even if the underlying metric later regresses.
type Milestone struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Metric      MilestoneMetric `json:"metric"`
	Threshold   int             `json:"threshold"`
	Unlocked    bool            `json:"unlocked"`
	UnlockedAt  string          `json:"unlocked_at,omitempty"` // YYYY-MM-DD, set once
}

// DefaultMilestones is the fixed catalog. Unlock state is persisted
// separately and merged in by the store.
func DefaultMilestones() []Milestone {
	return []Milestone{
		{ID: "first-step", Name: "First Step", Description: "Complete a habit once", Icon: "🌱", Metric: MetricTotalCompletions, Threshold: 1},
		{ID: "gardener", Name: "Gardener", Description: "Track 5 habits", Icon: "🪴", Metric: MetricHabitCount, Threshold: 5},
		{ID: "week-warrior", Name: "Week Warrior", Description: "Hold a 7-day streak", Icon: "🔥", Metric: MetricBestStreak, Threshold: 7},
		{ID: "steady-month", Name: "Steady Month", Description: "Hold a 30-day streak", Icon: "🌕", Metric: MetricBestStreak, Threshold: 30},
		{ID: "half-century", Name: "Half Century", Description: "50 total completions", Icon: "⭐", Metric: MetricTotalCompletions, Threshold: 50},
		{ID: "centurion", Name: "Centurion", Description: "100 total completions", Icon: "🏆", Metric: MetricTotalCompletions, Threshold: 100},
		{ID: "perfect-ten", Name: "Perfect Ten", Description: "10 perfect days in the last 30", Icon: "💎", Metric: MetricRecentPerfectDays, Threshold: 10},
		{ID: "journaler", Name: "Journaler", Description: "Write 10 reflections", Icon: "📝", Metric: MetricReflectionCount, Threshold: 10},
	}
}
