package review

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
)

// ErrMistakeNotFound means there is no mistake record for the
// (user, question) pair.
var ErrMistakeNotFound = errors.New("mistake not found")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// execer is the write surface markMastered needs. *sql.DB satisfies it.
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// MarkMastered flips the mastered flag for the pair. Idempotent: marking
// an already-mastered record succeeds without change.
func (s *Store) MarkMastered(userID, questionID int64) error {
	return markMastered(s.db, userID, questionID)
}

// markMastered matches on (user, question) only, not on the current
// mastered value, so a repeat call still finds the row and succeeds.
func markMastered(db execer, userID, questionID int64) error {
	res, err := db.Exec(
		`UPDATE mistakes SET mastered = TRUE WHERE user_id = $1 AND question_id = $2`,
		userID, questionID,
	)
	if err != nil {
		return fmt.Errorf("mark mastered: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark mastered: %w", err)
	}
	if affected == 0 {
		return ErrMistakeNotFound
	}
	return nil
}

// ListActiveMistakes returns unmastered mistakes with their questions,
// most recently missed first.
func (s *Store) ListActiveMistakes(userID int64) ([]models.RevisionItem, error) {
	rows, err := s.db.Query(
		`SELECT m.id, m.user_id, m.question_id, m.count, m.mastered, m.last_reviewed,
		        q.id, q.subject, q.topic, q.text, q.options, q.correct_option, q.explanation, q.difficulty
		 FROM mistakes m
		 JOIN questions q ON q.id = m.question_id
		 WHERE m.user_id = $1 AND m.mastered = FALSE
		 ORDER BY m.last_reviewed DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list active mistakes: %w", err)
	}
	defer rows.Close()

	var items []models.RevisionItem
	for rows.Next() {
		var item models.RevisionItem
		var optJSON []byte
		err := rows.Scan(
			&item.Mistake.ID, &item.Mistake.UserID, &item.Mistake.QuestionID,
			&item.Mistake.Count, &item.Mistake.Mastered, &item.Mistake.LastReviewed,
			&item.Question.ID, &item.Question.Subject, &item.Question.Topic,
			&item.Question.Text, &optJSON, &item.Question.CorrectOption,
			&item.Question.Explanation, &item.Question.Difficulty,
		)
		if err != nil {
			return nil, fmt.Errorf("scan mistake: %w", err)
		}
		if err := json.Unmarshal(optJSON, &item.Question.Options); err != nil {
			return nil, fmt.Errorf("decode options: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
