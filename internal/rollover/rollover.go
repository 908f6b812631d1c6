// Package rollover rederives per-habit state when the calendar day changes.
package rollover

import (
	"fmt"

	"github.com/tendapp/tend/internal/engine"
	"github.com/tendapp/tend/internal/logger"
	"github.com/tendapp/tend/internal/storage"
)

// Check compares the stored last-active date against today and, when the day
// has changed, recomputes every habit's streak caches and completed-today
// flag for the new date. Safe to call repeatedly; a same-day call is a no-op.
// Returns true when a rollover was performed.
func Check(store storage.Provider, today string) (bool, error) {
	settings, err := store.GetSettings()
	if err != nil {
		return false, fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.LastActiveDate == today {
		return false, nil
	}

	logger.Info("Day rollover", "from", settings.LastActiveDate, "to", today)

	habits, err := store.GetAllHabits(false)
	if err != nil {
		return false, fmt.Errorf("failed to load habits: %w", err)
	}

	for i := range habits {
		engine.Recompute(&habits[i], today)
		if err := store.UpdateHabit(habits[i]); err != nil {
			return false, fmt.Errorf("failed to update habit %s: %w", habits[i].ID, err)
		}
	}

	settings.LastActiveDate = today
	if err := store.SaveSettings(settings); err != nil {
		return false, fmt.Errorf("failed to save settings: %w", err)
	}

	return true, nil
}
