package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tendapp/tend/internal/backup"
	"github.com/tendapp/tend/internal/engine"
	"github.com/tendapp/tend/internal/logger"
	"github.com/tendapp/tend/internal/models"
	"github.com/tendapp/tend/internal/rollover"
	"github.com/tendapp/tend/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// Today returns the current calendar date in the local timezone.
func (c *Context) Today() string {
	return engine.Today(time.Now())
}

// EnsureRolledOver recomputes habit state if the calendar day has changed
// since the last run.
func (c *Context) EnsureRolledOver() error {
	_, err := rollover.Check(c.Store, c.Today())
	return err
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseWeekdays parses a comma-separated list of weekdays. Accepts names
// ("mon" or "monday"), numbers (0=Sunday..6=Saturday), and the shorthands
// "daily" and "weekdays".
func ParseWeekdays(s string) ([]time.Weekday, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "daily", "everyday":
		return models.EveryDay(), nil
	case "weekdays":
		return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, nil
	}

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

// FormatSchedule formats a weekly schedule into a human-readable string
func FormatSchedule(schedule []time.Weekday) string {
	if len(schedule) == 0 {
		return "never"
	}
	if len(schedule) == 7 {
		return "every day"
	}
	var days []string
	for _, wd := range schedule {
		days = append(days, wd.String()[:3])
	}
	return strings.Join(days, ",")
}

// ResolveDay validates an optional YYYY-MM-DD argument, defaulting to today.
func (c *Context) ResolveDay(date string) (string, error) {
	if date == "" {
		return c.Today(), nil
	}
	if _, ok := engine.ParseDay(date); !ok {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return date, nil
}
