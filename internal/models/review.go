package models

import "time"

// Mistake tracks repeated wrong answers to one question by one user.
// There is at most one row per (user, question), enforced by a unique
// constraint so concurrent submissions upsert instead of racing.
type Mistake struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	QuestionID   int64     `json:"question_id"`
	Count        int       `json:"count"`
	Mastered     bool      `json:"mastered"`
	LastReviewed time.Time `json:"last_reviewed"`
}

// RevisionItem is an active (unmastered) mistake with its question.
type RevisionItem struct {
	Mistake  Mistake  `json:"mistake"`
	Question Question `json:"question"`
}

type MarkMasteredRequest struct {
	QuestionID int64 `json:"question_id"`
}
