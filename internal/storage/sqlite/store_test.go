package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tendapp/tend/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tend.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func testStoreHabit(name string) models.Habit {
	return models.Habit{
		ID:        uuid.NewString(),
		Name:      name,
		Emoji:     "🌱",
		Category:  "health",
		Schedule:  models.EveryDay(),
		CreatedAt: time.Now(),
	}
}

func TestInitCreatesSchema(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings after Init failed: %v", err)
	}
	if settings.Timezone == "" {
		t.Error("expected default timezone to be set")
	}
	if settings.LastActiveDate == "" {
		t.Error("expected last active date to be set")
	}
}

func TestLoadMissingDatabase(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading missing database, got nil")
	}
}

func TestHabitRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	h := testStoreHabit("Meditate")
	h.Target = "10 minutes"
	h.ReminderTime = "07:30"
	h.Schedule = []time.Weekday{time.Monday, time.Wednesday, time.Friday}

	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	got, err := store.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.Name != "Meditate" || got.Emoji != "🌱" || got.Target != "10 minutes" || got.ReminderTime != "07:30" {
		t.Errorf("habit fields not preserved: %+v", got)
	}
	if len(got.Schedule) != 3 || got.Schedule[0] != time.Monday {
		t.Errorf("schedule not preserved: %v", got.Schedule)
	}

	byName, err := store.GetHabitByName("Meditate")
	if err != nil {
		t.Fatalf("GetHabitByName failed: %v", err)
	}
	if byName.ID != h.ID {
		t.Errorf("GetHabitByName returned wrong habit: %s", byName.ID)
	}
}

func TestHabitUpdate(t *testing.T) {
	store := setupTestStore(t)

	h := testStoreHabit("Read")
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	h.Name = "Read fiction"
	h.CurrentStreak = 4
	h.LongestStreak = 9
	if err := store.UpdateHabit(h); err != nil {
		t.Fatalf("UpdateHabit failed: %v", err)
	}

	got, err := store.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.Name != "Read fiction" {
		t.Errorf("name not updated: %s", got.Name)
	}
	if got.CurrentStreak != 4 || got.LongestStreak != 9 {
		t.Errorf("streak caches not updated: current=%d longest=%d", got.CurrentStreak, got.LongestStreak)
	}
}

func TestHabitSoftDeleteAndRestore(t *testing.T) {
	store := setupTestStore(t)

	h := testStoreHabit("Stretch")
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	if err := store.DeleteHabit(h.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	if _, err := store.GetHabit(h.ID); err == nil {
		t.Error("expected error getting deleted habit, got nil")
	}

	habits, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("expected 0 visible habits, got %d", len(habits))
	}

	all, err := store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("GetAllHabits(true) failed: %v", err)
	}
	if len(all) != 1 || all[0].DeletedAt == nil {
		t.Errorf("expected 1 deleted habit with DeletedAt set, got %+v", all)
	}

	if err := store.DeleteHabit(h.ID); err == nil {
		t.Error("expected error deleting already-deleted habit, got nil")
	}

	if err := store.RestoreHabit(h.ID); err != nil {
		t.Fatalf("RestoreHabit failed: %v", err)
	}
	got, err := store.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit after restore failed: %v", err)
	}
	if got.DeletedAt != nil {
		t.Error("expected DeletedAt to be cleared after restore")
	}
}

func TestGetAllHabitsOrderedByPosition(t *testing.T) {
	store := setupTestStore(t)

	first := testStoreHabit("First")
	first.Position = 2
	second := testStoreHabit("Second")
	second.Position = 0
	third := testStoreHabit("Third")
	third.Position = 1

	for _, h := range []models.Habit{first, second, third} {
		if err := store.AddHabit(h); err != nil {
			t.Fatalf("AddHabit failed: %v", err)
		}
	}

	habits, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	wantOrder := []string{"Second", "Third", "First"}
	for i, want := range wantOrder {
		if habits[i].Name != want {
			t.Errorf("position %d: got %s, want %s", i, habits[i].Name, want)
		}
	}
}

func TestCompletionAndSkipMarks(t *testing.T) {
	store := setupTestStore(t)

	h := testStoreHabit("Journal")
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	if err := store.SetCompletion(h.ID, "2026-01-05", true); err != nil {
		t.Fatalf("SetCompletion failed: %v", err)
	}
	if err := store.SetCompletion(h.ID, "2026-01-06", true); err != nil {
		t.Fatalf("SetCompletion failed: %v", err)
	}
	// Marking the same day twice must not duplicate
	if err := store.SetCompletion(h.ID, "2026-01-06", true); err != nil {
		t.Fatalf("duplicate SetCompletion failed: %v", err)
	}
	if err := store.SetSkip(h.ID, "2026-01-07", true); err != nil {
		t.Fatalf("SetSkip failed: %v", err)
	}

	got, err := store.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if len(got.CompletionDates) != 2 {
		t.Errorf("expected 2 completion dates, got %v", got.CompletionDates)
	}
	if len(got.SkipDates) != 1 || got.SkipDates[0] != "2026-01-07" {
		t.Errorf("expected skip on 2026-01-07, got %v", got.SkipDates)
	}

	// Unmarking removes the row
	if err := store.SetCompletion(h.ID, "2026-01-06", false); err != nil {
		t.Fatalf("SetCompletion(false) failed: %v", err)
	}
	if err := store.SetSkip(h.ID, "2026-01-07", false); err != nil {
		t.Fatalf("SetSkip(false) failed: %v", err)
	}

	got, err = store.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if len(got.CompletionDates) != 1 || got.CompletionDates[0] != "2026-01-05" {
		t.Errorf("expected only 2026-01-05 completed, got %v", got.CompletionDates)
	}
	if len(got.SkipDates) != 0 {
		t.Errorf("expected no skips, got %v", got.SkipDates)
	}
}

func TestSetCompletionClearsSkip(t *testing.T) {
	store := setupTestStore(t)

	h := testStoreHabit("Stretch")
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	if err := store.SetSkip(h.ID, "2026-01-05", true); err != nil {
		t.Fatalf("SetSkip failed: %v", err)
	}
	// Completing a rest day promotes it: the skip mark must go away so the
	// day never sits in both sets
	if err := store.SetCompletion(h.ID, "2026-01-05", true); err != nil {
		t.Fatalf("SetCompletion failed: %v", err)
	}

	got, err := store.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if len(got.CompletionDates) != 1 || got.CompletionDates[0] != "2026-01-05" {
		t.Errorf("expected 2026-01-05 completed, got %v", got.CompletionDates)
	}
	if len(got.SkipDates) != 0 {
		t.Errorf("expected skip mark to be cleared, got %v", got.SkipDates)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	want := models.Settings{
		Timezone:       "America/New_York",
		LastActiveDate: "2026-03-14",
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	// Fresh database yields a zero profile without error
	got, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile on fresh db failed: %v", err)
	}
	if got != (models.Profile{}) {
		t.Errorf("expected zero profile, got %+v", got)
	}

	want := models.Profile{Name: "Alex", Tagline: "small steps", JoinDate: "2026-01-01"}
	if err := store.SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err = store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got != want {
		t.Errorf("profile = %+v, want %+v", got, want)
	}
}

func TestReflections(t *testing.T) {
	store := setupTestStore(t)

	for i, day := range []string{"2026-02-01", "2026-02-03", "2026-02-10"} {
		r := models.Reflection{
			ID:        uuid.NewString(),
			Day:       day,
			Text:      "entry",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		if err := store.AddReflection(r); err != nil {
			t.Fatalf("AddReflection failed: %v", err)
		}
	}

	got, err := store.GetReflections("2026-02-01", "2026-02-05")
	if err != nil {
		t.Fatalf("GetReflections failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reflections in range, got %d", len(got))
	}
	if got[0].Day != "2026-02-03" {
		t.Errorf("expected newest day first, got %s", got[0].Day)
	}

	count, err := store.CountReflections()
	if err != nil {
		t.Fatalf("CountReflections failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 reflections total, got %d", count)
	}
}

func TestMilestonePersistence(t *testing.T) {
	store := setupTestStore(t)

	milestones, err := store.GetMilestones()
	if err != nil {
		t.Fatalf("GetMilestones failed: %v", err)
	}
	if len(milestones) != len(models.DefaultMilestones()) {
		t.Fatalf("expected full catalog, got %d milestones", len(milestones))
	}
	for _, m := range milestones {
		if m.Unlocked {
			t.Errorf("milestone %s unlocked on fresh db", m.ID)
		}
	}

	milestones[0].Unlocked = true
	milestones[0].UnlockedAt = "2026-03-01"
	if err := store.SaveMilestones(milestones); err != nil {
		t.Fatalf("SaveMilestones failed: %v", err)
	}

	got, err := store.GetMilestones()
	if err != nil {
		t.Fatalf("GetMilestones failed: %v", err)
	}
	var unlocked int
	for _, m := range got {
		if m.Unlocked {
			unlocked++
			if m.ID != milestones[0].ID || m.UnlockedAt != "2026-03-01" {
				t.Errorf("wrong milestone unlocked: %+v", m)
			}
		}
	}
	if unlocked != 1 {
		t.Errorf("expected exactly 1 unlocked milestone, got %d", unlocked)
	}
}
