package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tendapp/tend/internal/models"
)

const habitColumns = `id, name, emoji, category, target, schedule, reminder_time,
	position, current_streak, longest_streak, created_at, deleted_at`

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) scanHabit(row interface{ Scan(...interface{}) error }) (models.Habit, error) {
	var h models.Habit
	var schedule, createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&h.ID, &h.Name, &h.Emoji, &h.Category, &h.Target, &schedule,
		&h.ReminderTime, &h.Position, &h.CurrentStreak, &h.LongestStreak,
		&createdAt, &deletedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Schedule, err = models.ParseSchedule(schedule)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse schedule for habit %s: %w", h.ID, err)
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse deleted_at for habit %s: %w", h.ID, err)
		}
		h.DeletedAt = &t
	}

	return h, nil
}

// loadMarks fills in the completion and skip date sets for the habit.
func (s *Store) loadMarks(h *models.Habit) error {
	rows, err := s.db.Query("SELECT day FROM habit_completions WHERE habit_id = ? ORDER BY day", h.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return err
		}
		h.CompletionDates = append(h.CompletionDates, day)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	skipRows, err := s.db.Query("SELECT day FROM habit_skips WHERE habit_id = ? ORDER BY day", h.ID)
	if err != nil {
		return err
	}
	defer skipRows.Close()

	for skipRows.Next() {
		var day string
		if err := skipRows.Scan(&day); err != nil {
			return err
		}
		h.SkipDates = append(h.SkipDates, day)
	}
	return skipRows.Err()
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE id = ? AND deleted_at IS NULL`, id)

	h, err := s.scanHabit(row)
	if err != nil {
		return models.Habit{}, err
	}
	if err := s.loadMarks(&h); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE name = ? AND deleted_at IS NULL`, name)

	h, err := s.scanHabit(row)
	if err != nil {
		return models.Habit{}, err
	}
	if err := s.loadMarks(&h); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetAllHabits(includeDeleted bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY position, created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := s.scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		if err := s.loadMarks(&habits[i]); err != nil {
			return nil, err
		}
	}

	return habits, nil
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	var deletedAt sql.NullString
	if habit.DeletedAt != nil {
		deletedAt = sql.NullString{String: habit.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, emoji, category, target, schedule, reminder_time,
			position, current_streak, longest_streak, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			emoji = excluded.emoji,
			category = excluded.category,
			target = excluded.target,
			schedule = excluded.schedule,
			reminder_time = excluded.reminder_time,
			position = excluded.position,
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			deleted_at = excluded.deleted_at`,
		habit.ID, habit.Name, habit.Emoji, habit.Category, habit.Target,
		models.ScheduleString(habit.Schedule), habit.ReminderTime,
		habit.Position, habit.CurrentStreak, habit.LongestStreak,
		habit.CreatedAt.Format(time.RFC3339), deletedAt)

	return err
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found or already deleted")
	}

	return nil
}

func (s *Store) RestoreHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found or not deleted")
	}

	return nil
}

// SetCompletion records or clears a completion mark for the day.
// Marking a day done also clears any rest-day mark for it, so a day is
// never in both sets. Both directions are idempotent.
func (s *Store) SetCompletion(habitID, day string, done bool) error {
	if done {
		if _, err := s.db.Exec("DELETE FROM habit_skips WHERE habit_id = ? AND day = ?", habitID, day); err != nil {
			return err
		}
		_, err := s.db.Exec(`
			INSERT INTO habit_completions (habit_id, day) VALUES (?, ?)
			ON CONFLICT(habit_id, day) DO NOTHING`, habitID, day)
		return err
	}
	_, err := s.db.Exec("DELETE FROM habit_completions WHERE habit_id = ? AND day = ?", habitID, day)
	return err
}

// SetSkip records or clears a rest-day mark for the day.
// Both directions are idempotent.
func (s *Store) SetSkip(habitID, day string, skipped bool) error {
	if skipped {
		_, err := s.db.Exec(`
			INSERT INTO habit_skips (habit_id, day) VALUES (?, ?)
			ON CONFLICT(habit_id, day) DO NOTHING`, habitID, day)
		return err
	}
	_, err := s.db.Exec("DELETE FROM habit_skips WHERE habit_id = ? AND day = ?", habitID, day)
	return err
}
