package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tendapp/tend/internal/constants"
)

// Habit is a recurring habit with a weekly schedule. CompletionDates and
// SkipDates are sets of YYYY-MM-DD strings; CurrentStreak, LongestStreak and
// IsCompletedToday are derived caches that must always be rederivable from
// the date sets plus the schedule.
type Habit struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Emoji            string         `json:"emoji,omitempty"`
	Category         string         `json:"category,omitempty"`
	Target           string         `json:"target,omitempty"` // e.g. "10 minutes", "8 glasses"
	Schedule         []time.Weekday `json:"schedule"`
	CompletionDates  []string       `json:"completion_dates"`
	SkipDates        []string       `json:"skip_dates"`
	CurrentStreak    int            `json:"current_streak"`
	LongestStreak    int            `json:"longest_streak"`
	IsCompletedToday bool           `json:"is_completed_today"`
	ReminderTime     string         `json:"reminder_time,omitempty"` // HH:MM format
	Position         int            `json:"position"`
	CreatedAt        time.Time      `json:"created_at"`
	DeletedAt        *time.Time     `json:"deleted_at,omitempty"`
}

// EveryDay is the default schedule for habits created without one.
func EveryDay() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}

func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	for _, wd := range h.Schedule {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("invalid schedule weekday: %d", wd)
		}
	}

	if h.ReminderTime != "" {
		if _, err := time.Parse(constants.TimeFormat, h.ReminderTime); err != nil {
			return fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
		}
	}

	for _, d := range h.CompletionDates {
		if _, err := time.Parse(constants.DateFormat, d); err != nil {
			return fmt.Errorf("invalid completion date %q: %w", d, err)
		}
	}
	for _, d := range h.SkipDates {
		if _, err := time.Parse(constants.DateFormat, d); err != nil {
			return fmt.Errorf("invalid skip date %q: %w", d, err)
		}
	}

	return nil
}

// CompletedOn reports whether the habit was marked done on the given day.
func (h *Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletionDates {
		if d == day {
			return true
		}
	}
	return false
}

// SkippedOn reports whether the given day is an explicit rest day.
// A date present in both sets counts as completed, not skipped.
func (h *Habit) SkippedOn(day string) bool {
	if h.CompletedOn(day) {
		return false
	}
	for _, d := range h.SkipDates {
		if d == day {
			return true
		}
	}
	return false
}

// SortedCompletionDates returns the distinct completion dates in ascending
// order. The stored slice is left untouched.
func (h *Habit) SortedCompletionDates() []string {
	seen := make(map[string]bool, len(h.CompletionDates))
	out := make([]string, 0, len(h.CompletionDates))
	for _, d := range h.CompletionDates {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}

// ScheduleString renders the schedule as a comma-separated weekday list
// (storage format, 0=Sunday..6=Saturday).
func ScheduleString(schedule []time.Weekday) string {
	parts := make([]string, len(schedule))
	for i, wd := range schedule {
		parts[i] = strconv.Itoa(int(wd))
	}
	return strings.Join(parts, ",")
}

// ParseSchedule parses the storage format produced by ScheduleString.
// An empty string yields an empty (never-due) schedule.
func ParseSchedule(s string) ([]time.Weekday, error) {
	if s == "" {
		return []time.Weekday{}, nil
	}
	parts := strings.Split(s, ",")
	schedule := make([]time.Weekday, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid schedule value: %q", part)
		}
		schedule = append(schedule, time.Weekday(n))
	}
	return schedule, nil
}
