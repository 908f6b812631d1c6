package engine

import (
	"testing"
	"time"

	"github.com/tendapp/tend/internal/models"
)

func TestIsDue(t *testing.T) {
	tests := []struct {
		name     string
		schedule []time.Weekday
		day      string
		want     bool
	}{
		{
			name:     "weekday in schedule",
			schedule: []time.Weekday{time.Monday, time.Friday},
			day:      "2024-01-05", // Friday
			want:     true,
		},
		{
			name:     "weekday not in schedule",
			schedule: []time.Weekday{time.Monday, time.Friday},
			day:      "2024-01-06", // Saturday
			want:     false,
		},
		{
			name:     "every day",
			schedule: models.EveryDay(),
			day:      "2024-01-07",
			want:     true,
		},
		{
			name:     "empty schedule is never due",
			schedule: []time.Weekday{},
			day:      "2024-01-05",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDue(tt.schedule, tt.day); got != tt.want {
				t.Errorf("IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDueHabitsPreservesOrder(t *testing.T) {
	weekend := []time.Weekday{time.Saturday, time.Sunday}

	a := testHabit(models.EveryDay(), nil, nil)
	a.ID, a.Name = "a", "A"
	b := testHabit(weekend, nil, nil)
	b.ID, b.Name = "b", "B"
	c := testHabit(models.EveryDay(), nil, nil)
	c.ID, c.Name = "c", "C"

	due := DueHabits([]models.Habit{a, b, c}, "2024-01-05") // Friday
	if len(due) != 2 {
		t.Fatalf("len(due) = %d, want 2", len(due))
	}
	if due[0].ID != "a" || due[1].ID != "c" {
		t.Errorf("due order = [%s %s], want [a c]", due[0].ID, due[1].ID)
	}

	due = DueHabits([]models.Habit{a, b, c}, "2024-01-06") // Saturday
	if len(due) != 3 {
		t.Fatalf("len(due) = %d, want 3", len(due))
	}
	if due[1].ID != "b" {
		t.Errorf("due[1] = %s, want b", due[1].ID)
	}
}
