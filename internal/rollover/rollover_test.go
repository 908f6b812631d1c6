package rollover

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tendapp/tend/internal/models"
	"github.com/tendapp/tend/internal/storage/sqlite"
)

func setupStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "tend.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCheckSameDayNoop(t *testing.T) {
	store := setupStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	settings.LastActiveDate = "2026-06-10"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	rolled, err := Check(store, "2026-06-10")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if rolled {
		t.Error("expected no rollover on same day")
	}
}

func TestCheckRecomputesHabits(t *testing.T) {
	store := setupStore(t)

	h := models.Habit{
		ID:        uuid.NewString(),
		Name:      "Meditate",
		Schedule:  models.EveryDay(),
		CreatedAt: time.Now(),
	}
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	// Completed on the 9th and 10th; on the 10th the cached streak was 2
	for _, day := range []string{"2026-06-09", "2026-06-10"} {
		if err := store.SetCompletion(h.ID, day, true); err != nil {
			t.Fatalf("SetCompletion failed: %v", err)
		}
	}
	h.CurrentStreak = 2
	h.LongestStreak = 2
	h.IsCompletedToday = true
	if err := store.UpdateHabit(h); err != nil {
		t.Fatalf("UpdateHabit failed: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	settings.LastActiveDate = "2026-06-10"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	// Crossing into the 11th: today is due and unmarked, so the current
	// streak resets and the completed-today flag clears.
	rolled, err := Check(store, "2026-06-11")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !rolled {
		t.Fatal("expected rollover to be performed")
	}

	got, err := store.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.IsCompletedToday {
		t.Error("expected IsCompletedToday to be cleared after rollover")
	}
	if got.CurrentStreak != 0 {
		t.Errorf("expected current streak 0 after unmarked due day, got %d", got.CurrentStreak)
	}
	if got.LongestStreak != 2 {
		t.Errorf("expected longest streak 2 preserved, got %d", got.LongestStreak)
	}

	settings, err = store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.LastActiveDate != "2026-06-11" {
		t.Errorf("expected last active date 2026-06-11, got %s", settings.LastActiveDate)
	}

	// Second call on the same day is a no-op
	rolled, err = Check(store, "2026-06-11")
	if err != nil {
		t.Fatalf("second Check failed: %v", err)
	}
	if rolled {
		t.Error("expected second Check on same day to be a no-op")
	}
}
