package gamification

import (
	"fmt"
	"time"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// OnLogin advances the user's study streak. It runs on explicit login
// only; quiz activity between logins does not move the streak.
// Returns the streak after the update.
func (s *Service) OnLogin(userID int64, now time.Time) (int, error) {
	current, lastStudy, err := s.store.GetStreakState(userID)
	if err != nil {
		return 0, fmt.Errorf("streak update: %w", err)
	}

	next := NextStreak(current, lastStudy, now)
	if err := s.store.SetStreak(userID, next, now); err != nil {
		return 0, fmt.Errorf("streak update: %w", err)
	}
	return next, nil
}
