package models

import (
	"fmt"
	"time"

	"github.com/tendapp/tend/internal/constants"
)

// Profile holds the local user's display identity.
type Profile struct {
	Name     string `json:"name"`
	Tagline  string `json:"tagline,omitempty"`
	JoinDate string `json:"join_date"` // YYYY-MM-DD
}

// Reflection is a free-form journal entry attached to a habit and a day.
type Reflection struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Reflection) Validate() error {
	if r.Text == "" {
		return fmt.Errorf("reflection text cannot be empty")
	}
	if _, err := time.Parse(constants.DateFormat, r.Day); err != nil {
		return fmt.Errorf("invalid reflection date (expected YYYY-MM-DD): %w", err)
	}
	return nil
}

// Settings are the application-level key/value settings.
type Settings struct {
	Timezone       string `json:"timezone"`
	LastActiveDate string `json:"last_active_date"` // YYYY-MM-DD, used by day rollover
}
