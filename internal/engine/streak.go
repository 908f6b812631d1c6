package engine

import (
	"github.com/tendapp/tend/internal/models"
)

// CurrentStreak walks backward from today counting consecutive due days
// that were completed. Skipped due days and days the habit is not due at
// all are streak-neutral: they neither count nor break the run. The walk
// stops at the first due day that was neither completed nor skipped.
//
// When today is due and unmarked the streak is 0. When today is not due,
// the result is the streak as of the most recent due day. A habit with an
// empty schedule is never due and always reports 0.
func CurrentStreak(h models.Habit, today string) int {
	if len(h.Schedule) == 0 {
		return 0
	}

	if IsDue(h.Schedule, today) && !h.CompletedOn(today) && !h.SkippedOn(today) {
		return 0
	}

	cursor, ok := ParseDay(today)
	if !ok {
		return 0
	}

	// The walk terminates: the schedule is non-empty so a due day comes up
	// at least weekly, and only finitely many days are completed or skipped.
	count := 0
	for {
		day := FormatDate(cursor)
		if IsDue(h.Schedule, day) {
			switch {
			case h.CompletedOn(day):
				count++
			case h.SkippedOn(day):
				// rest day, pass through
			default:
				return count
			}
		}
		cursor = cursor.AddDate(0, 0, -1)
	}
}

// LongestStreak scans the habit's full sorted completion history for the
// longest run under the same tolerance rules as CurrentStreak: adjacent
// completion dates extend a run, and a wider gap still extends it when
// every intermediate day was either skipped or not due.
func LongestStreak(h models.Habit) int {
	sorted := h.SortedCompletionDates()
	if len(sorted) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		gap := DaysBetween(sorted[i-1], sorted[i])
		switch {
		case gap == 1:
			run++
		case gap > 1 && gapBridged(h, sorted[i-1], sorted[i]):
			run++
		default:
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return longest
}

// gapBridged reports whether every day strictly between from and to is
// streak-neutral (skipped or not due).
func gapBridged(h models.Habit, from, to string) bool {
	for day := NextDay(from); day != to; day = NextDay(day) {
		if IsDue(h.Schedule, day) && !h.SkippedOn(day) {
			return false
		}
	}
	return true
}

// Recompute rederives the habit's cached fields from its date sets. It is
// the only sanctioned writer of CurrentStreak, LongestStreak and
// IsCompletedToday, and must be called after every mutation to
// CompletionDates or SkipDates and on day rollover.
func Recompute(h *models.Habit, today string) {
	h.IsCompletedToday = h.CompletedOn(today)
	h.CurrentStreak = CurrentStreak(*h, today)
	h.LongestStreak = LongestStreak(*h)
}
