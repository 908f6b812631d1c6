package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"daily shorthand", "daily", []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}, false},
		{"weekdays shorthand", "weekdays", []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		}, false},
		{"short names", "mon,wed,fri", []time.Weekday{time.Monday, time.Wednesday, time.Friday}, false},
		{"full names mixed case", "Sunday,SATURDAY", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"numbers", "0,6", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"spaces tolerated", " tue , thu ", []time.Weekday{time.Tuesday, time.Thursday}, false},
		{"unknown name", "moonday", nil, true},
		{"number out of range", "7", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatSchedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule []time.Weekday
		want     string
	}{
		{"empty", nil, "never"},
		{"full week", []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}, "every day"},
		{"partial", []time.Weekday{time.Monday, time.Wednesday, time.Friday}, "Mon,Wed,Fri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSchedule(tt.schedule); got != tt.want {
				t.Errorf("FormatSchedule() = %q, want %q", got, tt.want)
			}
		})
	}
}
