package sqlite

import (
	"fmt"
	"time"

	"github.com/tendapp/tend/internal/models"
)

func (s *Store) AddReflection(r models.Reflection) error {
	_, err := s.db.Exec(`
		INSERT INTO reflections (id, habit_id, day, text, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.HabitID, r.Day, r.Text, r.CreatedAt.Format(time.RFC3339))
	return err
}

// GetReflections returns reflections whose day falls within [startDay, endDay],
// newest day first.
func (s *Store) GetReflections(startDay, endDay string) ([]models.Reflection, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, text, created_at
		FROM reflections
		WHERE day >= ? AND day <= ?
		ORDER BY day DESC, created_at DESC`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reflections []models.Reflection
	for rows.Next() {
		var r models.Reflection
		var createdAt string
		if err := rows.Scan(&r.ID, &r.HabitID, &r.Day, &r.Text, &createdAt); err != nil {
			return nil, err
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for reflection %s: %w", r.ID, err)
		}
		reflections = append(reflections, r)
	}
	return reflections, rows.Err()
}

func (s *Store) CountReflections() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM reflections").Scan(&count)
	return count, err
}
