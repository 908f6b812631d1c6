package sqlite

import (
	"github.com/tendapp/tend/internal/models"
)

// GetMilestones returns the built-in milestone catalog with persisted unlock
// state merged in. Unknown rows left over from older catalogs are ignored.
func (s *Store) GetMilestones() ([]models.Milestone, error) {
	rows, err := s.db.Query("SELECT id, unlocked, unlocked_at FROM milestones")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type state struct {
		unlocked   bool
		unlockedAt string
	}
	states := make(map[string]state)
	for rows.Next() {
		var id, unlockedAt string
		var unlocked int
		if err := rows.Scan(&id, &unlocked, &unlockedAt); err != nil {
			return nil, err
		}
		states[id] = state{unlocked: unlocked != 0, unlockedAt: unlockedAt}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	milestones := models.DefaultMilestones()
	for i := range milestones {
		if st, ok := states[milestones[i].ID]; ok {
			milestones[i].Unlocked = st.unlocked
			milestones[i].UnlockedAt = st.unlockedAt
		}
	}
	return milestones, nil
}

func (s *Store) SaveMilestones(milestones []models.Milestone) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO milestones (id, unlocked, unlocked_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			unlocked = excluded.unlocked,
			unlocked_at = excluded.unlocked_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range milestones {
		unlocked := 0
		if m.Unlocked {
			unlocked = 1
		}
		if _, err := stmt.Exec(m.ID, unlocked, m.UnlockedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}
