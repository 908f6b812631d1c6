package sqlite

import (
	"github.com/tendapp/tend/internal/models"
)

// GetProfile returns the stored profile. A fresh database yields the zero
// profile without error.
func (s *Store) GetProfile() (models.Profile, error) {
	rows, err := s.db.Query("SELECT key, value FROM profile")
	if err != nil {
		return models.Profile{}, err
	}
	defer rows.Close()

	profile := models.Profile{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Profile{}, err
		}
		switch key {
		case "name":
			profile.Name = value
		case "tagline":
			profile.Tagline = value
		case "join_date":
			profile.JoinDate = value
		}
	}
	return profile, rows.Err()
}

func (s *Store) SaveProfile(profile models.Profile) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO profile (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("name", profile.Name); err != nil {
		return err
	}
	if _, err := stmt.Exec("tagline", profile.Tagline); err != nil {
		return err
	}
	if _, err := stmt.Exec("join_date", profile.JoinDate); err != nil {
		return err
	}

	return tx.Commit()
}
