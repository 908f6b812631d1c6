package engine

import (
	"math"

	"github.com/tendapp/tend/internal/constants"
	"github.com/tendapp/tend/internal/models"
)

// DayStatus classifies a single date across a set of habits.
type DayStatus string

const (
	StatusAll     DayStatus = "all"
	StatusPartial DayStatus = "partial"
	StatusNone    DayStatus = "none"
)

// StatusForDay reports whether all, some or none of the habits due on the
// given date were completed. A day with no due habits is StatusNone.
func StatusForDay(habits []models.Habit, day string) DayStatus {
	due := DueHabits(habits, day)
	if len(due) == 0 {
		return StatusNone
	}

	completed := 0
	for _, h := range due {
		if h.CompletedOn(day) {
			completed++
		}
	}

	switch {
	case completed == len(due):
		return StatusAll
	case completed > 0:
		return StatusPartial
	default:
		return StatusNone
	}
}

// PeriodStats is a schedule-aware rollup over a date range.
type PeriodStats struct {
	Completed      int // completions on due days
	Possible       int // due-day slots, future dates excluded
	Rate           int // integer percent, 0 when Possible is 0
	PerfectDays    int // days with >0 due habits, all completed
	BestPerfectRun int // longest calendar-contiguous run of perfect days
}

// StatsForRange accumulates period statistics for every date in
// [start, end]. Dates after today are excluded from all counters, never
// penalized as missed. Date strings compare lexicographically because they
// share the fixed YYYY-MM-DD format.
func StatsForRange(habits []models.Habit, start, end, today string) PeriodStats {
	var stats PeriodStats
	run := 0

	for day := start; day <= end; day = NextDay(day) {
		if day > today {
			break
		}

		due := DueHabits(habits, day)
		completed := 0
		for _, h := range due {
			if h.CompletedOn(day) {
				completed++
			}
		}

		stats.Possible += len(due)
		stats.Completed += completed

		if len(due) > 0 && completed == len(due) {
			stats.PerfectDays++
			run++
			if run > stats.BestPerfectRun {
				stats.BestPerfectRun = run
			}
		} else {
			run = 0
		}
	}

	stats.Rate = percent(stats.Completed, stats.Possible)
	return stats
}

// HabitStats is a per-habit rollup over a date range.
type HabitStats struct {
	Habit     models.Habit
	Completed int
	Scheduled int
	Rate      int
}

// BreakdownForRange computes per-habit due-day and completion counts for
// every date in [start, end], excluding the future. All habits appear in
// the result, including those with zero scheduled days in range.
func BreakdownForRange(habits []models.Habit, start, end, today string) []HabitStats {
	out := make([]HabitStats, 0, len(habits))
	for _, h := range habits {
		hs := HabitStats{Habit: h}
		for day := start; day <= end; day = NextDay(day) {
			if day > today {
				break
			}
			if !IsDue(h.Schedule, day) {
				continue
			}
			hs.Scheduled++
			if h.CompletedOn(day) {
				hs.Completed++
			}
		}
		hs.Rate = percent(hs.Completed, hs.Scheduled)
		out = append(out, hs)
	}
	return out
}

// Thriving returns the habits with a completion rate at or above the
// thriving threshold. Habits with no scheduled days in range are excluded.
func Thriving(stats []HabitStats) []HabitStats {
	var out []HabitStats
	for _, s := range stats {
		if s.Scheduled > 0 && s.Rate >= constants.ThrivingRate {
			out = append(out, s)
		}
	}
	return out
}

// Struggling returns the habits with a completion rate below the
// struggling threshold. Habits with no scheduled days in range are excluded.
func Struggling(stats []HabitStats) []HabitStats {
	var out []HabitStats
	for _, s := range stats {
		if s.Scheduled > 0 && s.Rate < constants.StrugglingRate {
			out = append(out, s)
		}
	}
	return out
}

// Metrics are the aggregate inputs to milestone evaluation.
type Metrics struct {
	TotalCompletions  int
	BestStreak        int // best current-or-longest streak across all habits
	HabitCount        int
	ReflectionCount   int
	RecentPerfectDays int // perfect days in the trailing window ending today
}

// CollectMetrics derives milestone metrics from the full habit collection.
// Streaks are recomputed here rather than read from the cached fields so
// the result is correct even on a stale snapshot.
func CollectMetrics(habits []models.Habit, reflectionCount int, today string) Metrics {
	m := Metrics{
		HabitCount:      len(habits),
		ReflectionCount: reflectionCount,
	}

	for _, h := range habits {
		m.TotalCompletions += len(h.SortedCompletionDates())
		if cur := CurrentStreak(h, today); cur > m.BestStreak {
			m.BestStreak = cur
		}
		if longest := LongestStreak(h); longest > m.BestStreak {
			m.BestStreak = longest
		}
	}

	start := DaysAgo(today, constants.RecentWindowDays-1)
	m.RecentPerfectDays = StatsForRange(habits, start, today, today).PerfectDays

	return m
}

func percent(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}
