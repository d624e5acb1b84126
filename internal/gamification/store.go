package gamification

import (
	"database/sql"
	"fmt"
	"time"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetStreakState reads the user's current streak and last study date.
func (s *Store) GetStreakState(userID int64) (int, *time.Time, error) {
	var streak int
	var lastStudy *time.Time
	err := s.db.QueryRow(
		`SELECT current_streak, last_study_date FROM users WHERE id = $1`,
		userID,
	).Scan(&streak, &lastStudy)
	if err != nil {
		return 0, nil, fmt.Errorf("get streak state: %w", err)
	}
	return streak, lastStudy, nil
}

// SetStreak persists the streak and last study date together. A single
// UPDATE keeps the pair consistent without an explicit transaction.
func (s *Store) SetStreak(userID int64, streak int, now time.Time) error {
	_, err := s.db.Exec(
		`UPDATE users SET current_streak = $2, last_study_date = $3 WHERE id = $1`,
		userID, streak, now,
	)
	if err != nil {
		return fmt.Errorf("set streak: %w", err)
	}
	return nil
}
