package storage

import "github.com/tendapp/tend/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Profile
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Habits. Habits come back with their completion and skip date sets
	// loaded; UpdateHabit persists the habit row only, the date sets are
	// maintained through SetCompletion and SetSkip.
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Daily marks
	SetCompletion(habitID, day string, done bool) error
	SetSkip(habitID, day string, skipped bool) error

	// Reflections
	AddReflection(models.Reflection) error
	GetReflections(startDay, endDay string) ([]models.Reflection, error)
	CountReflections() (int, error)

	// Milestones. GetMilestones merges persisted unlock state into the
	// built-in catalog.
	GetMilestones() ([]models.Milestone, error)
	SaveMilestones([]models.Milestone) error

	// Utils
	GetConfigPath() string
}
