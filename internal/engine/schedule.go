package engine

import (
	"time"

	"github.com/tendapp/tend/internal/models"
)

// IsDue reports whether a habit with the given weekly schedule is due on
// the given date. An empty schedule is due on no day.
func IsDue(schedule []time.Weekday, day string) bool {
	wd := DayOfWeek(day)
	for _, s := range schedule {
		if s == wd {
			return true
		}
	}
	return false
}

// DueHabits filters a habit collection to those due on the given date,
// preserving input order.
func DueHabits(habits []models.Habit, day string) []models.Habit {
	var due []models.Habit
	for _, h := range habits {
		if IsDue(h.Schedule, day) {
			due = append(due, h)
		}
	}
	return due
}
