package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "tend"
	DefaultConfigPath = "~/.config/tend/tend.db"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used for reminder times (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tend-"
	BackupFileSuffix = ".db"

	// RolloverCheckSeconds is how often the TUI re-checks whether the
	// calendar day has changed.
	RolloverCheckSeconds = 60

	// Classification thresholds for review views, in integer percent.
	ThrivingRate   = 80
	StrugglingRate = 50

	// RecentWindowDays is the trailing window used for the perfect-day
	// milestone metric.
	RecentWindowDays = 30

	// Session States
	StateToday SessionState = iota
	StateStats
	StateReview
	StateMilestones
	StateAddHabit
	StateConfirmDelete
)
