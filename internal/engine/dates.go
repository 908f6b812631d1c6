// Package engine is the pure streak/schedule computation core. Every
// function takes a read-only habit snapshot plus an injectable reference
// date and returns plain values; nothing here touches storage or the clock.
package engine

import (
	"math"
	"time"

	"github.com/tendapp/tend/internal/constants"
)

// FormatDate renders a time as a local YYYY-MM-DD date string. Local
// calendar fields are used, never UTC, so dates near midnight do not shift
// in non-UTC timezones.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns today's date string for the given clock reading.
func Today(now time.Time) string {
	return FormatDate(now)
}

// ParseDay parses a YYYY-MM-DD string anchored at local noon. Anchoring at
// noon keeps AddDate day arithmetic stable across DST transitions. A
// malformed string is a caller contract violation; the zero time and false
// are returned so callers can assert in tests.
func ParseDay(day string) (time.Time, bool) {
	t, err := time.ParseInLocation(constants.DateFormat, day, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local), true
}

// DayOfWeek returns the weekday (0=Sunday..6=Saturday) of a date string.
func DayOfWeek(day string) time.Weekday {
	t, _ := ParseDay(day)
	return t.Weekday()
}

// PrevDay returns the date string of the calendar day before the given one.
func PrevDay(day string) string {
	t, _ := ParseDay(day)
	return FormatDate(t.AddDate(0, 0, -1))
}

// NextDay returns the date string of the calendar day after the given one.
func NextDay(day string) string {
	t, _ := ParseDay(day)
	return FormatDate(t.AddDate(0, 0, 1))
}

// DaysBetween returns the whole-day calendar gap from a to b (positive when
// b is later). Both endpoints are noon-anchored, so DST transitions inside
// the range shift the difference by at most an hour and rounding absorbs it.
func DaysBetween(a, b string) int {
	ta, _ := ParseDay(a)
	tb, _ := ParseDay(b)
	return int(math.Round(tb.Sub(ta).Hours() / 24))
}

// DaysAgo returns the date string n calendar days before the given day.
func DaysAgo(day string, n int) string {
	t, _ := ParseDay(day)
	return FormatDate(t.AddDate(0, 0, -n))
}
