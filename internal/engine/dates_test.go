package engine

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "zero-padded month and day",
			in:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local),
			want: "2024-01-05",
		},
		{
			name: "late evening stays on the local date",
			in:   time.Date(2024, 6, 30, 23, 59, 0, 0, time.Local),
			want: "2024-06-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		day  string
		want time.Weekday
	}{
		{"2024-01-05", time.Friday},
		{"2024-01-07", time.Sunday},
		{"2024-02-29", time.Thursday},
		{"2023-12-31", time.Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			if got := DayOfWeek(tt.day); got != tt.want {
				t.Errorf("DayOfWeek(%s) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestDayArithmetic(t *testing.T) {
	if got := PrevDay("2024-03-01"); got != "2024-02-29" {
		t.Errorf("PrevDay() = %q, want 2024-02-29", got)
	}
	if got := NextDay("2023-12-31"); got != "2024-01-01" {
		t.Errorf("NextDay() = %q, want 2024-01-01", got)
	}
	if got := DaysBetween("2024-01-01", "2024-01-31"); got != 30 {
		t.Errorf("DaysBetween() = %d, want 30", got)
	}
	if got := DaysAgo("2024-01-30", 29); got != "2024-01-01" {
		t.Errorf("DaysAgo() = %q, want 2024-01-01", got)
	}
}

func TestParseDayInvalid(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "2024-13-01", "01/05/2024"} {
		if _, ok := ParseDay(in); ok {
			t.Errorf("ParseDay(%q) ok = true, want false", in)
		}
	}
}
