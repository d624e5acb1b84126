package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const questionCols = `id, subject, topic, text, options, correct_option, explanation, difficulty`

// execer is the write surface upsertMistakes needs. *sql.Tx satisfies it.
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

const upsertMistakeStmt = `INSERT INTO mistakes (user_id, question_id, count, mastered, last_reviewed)
	 VALUES ($1, $2, 1, FALSE, NOW())
	 ON CONFLICT (user_id, question_id)
	 DO UPDATE SET count = mistakes.count + 1, mastered = FALSE, last_reviewed = NOW()`

// upsertMistakes records one wrong attempt per question id. The
// insert-or-increment is a single statement, so concurrent duplicate
// submissions cannot lose an increment or create a second row per
// (user, question) pair, and a mastered question missed again comes
// back unmastered.
func upsertMistakes(db execer, userID int64, questionIDs []int64) error {
	for _, questionID := range questionIDs {
		if _, err := db.Exec(upsertMistakeStmt, userID, questionID); err != nil {
			return fmt.Errorf("upsert mistake: %w", err)
		}
	}
	return nil
}

func scanQuestion(row interface{ Scan(...interface{}) error }) (models.Question, error) {
	var q models.Question
	var optJSON []byte
	err := row.Scan(&q.ID, &q.Subject, &q.Topic, &q.Text, &optJSON,
		&q.CorrectOption, &q.Explanation, &q.Difficulty)
	if err != nil {
		return q, err
	}
	if err := json.Unmarshal(optJSON, &q.Options); err != nil {
		return q, fmt.Errorf("decode options for question %d: %w", q.ID, err)
	}
	return q, nil
}

// GetQuestionsBySubject returns the catalog filtered to one subject.
func (s *Store) GetQuestionsBySubject(subject string) ([]models.Question, error) {
	rows, err := s.db.Query(
		`SELECT `+questionCols+` FROM questions WHERE subject = $1`, subject)
	if err != nil {
		return nil, fmt.Errorf("get questions by subject: %w", err)
	}
	defer rows.Close()
	return collectQuestions(rows)
}

// GetAllQuestions returns the entire catalog.
func (s *Store) GetAllQuestions() ([]models.Question, error) {
	rows, err := s.db.Query(`SELECT ` + questionCols + ` FROM questions`)
	if err != nil {
		return nil, fmt.Errorf("get all questions: %w", err)
	}
	defer rows.Close()
	return collectQuestions(rows)
}

func collectQuestions(rows *sql.Rows) ([]models.Question, error) {
	var questions []models.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetQuestionsByIDs resolves the given ids against the catalog. Ids that
// do not resolve are simply absent from the returned map.
func (s *Store) GetQuestionsByIDs(ids []int64) (map[int64]models.Question, error) {
	if len(ids) == 0 {
		return map[int64]models.Question{}, nil
	}

	rows, err := s.db.Query(
		`SELECT `+questionCols+` FROM questions WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("get questions by ids: %w", err)
	}
	defer rows.Close()

	catalog := make(map[int64]models.Question, len(ids))
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		catalog[q.ID] = q
	}
	return catalog, rows.Err()
}

// SaveSubmission persists one scored submission as a single transaction:
// the result row, its answer records, mistake upserts for wrong attempts,
// the user aggregate bump, and a study log entry all commit or roll back
// together.
func (s *Store) SaveSubmission(ctx context.Context, userID int64, kind models.QuizKind, subject *string, timeTakenSeconds int, tally Tally) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Result row first; its id parents the answer records.
	var resultID int64
	err = tx.QueryRow(
		`INSERT INTO quiz_results
		 (user_id, quiz_type, subject, score, total_questions, attempted, correct, wrong, accuracy, time_taken_seconds)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		userID, kind, subject, tally.Score, tally.Total, tally.Attempted,
		tally.Correct, tally.Wrong, tally.Accuracy, timeTakenSeconds,
	).Scan(&resultID)
	if err != nil {
		return 0, fmt.Errorf("insert result: %w", err)
	}

	for _, a := range tally.Answers {
		_, err := tx.Exec(
			`INSERT INTO user_answers (user_id, quiz_result_id, question_id, selected_option, is_correct)
			 VALUES ($1, $2, $3, $4, $5)`,
			userID, resultID, a.QuestionID, a.SelectedOption, a.IsCorrect,
		)
		if err != nil {
			return 0, fmt.Errorf("insert answer: %w", err)
		}
	}

	if err := upsertMistakes(tx, userID, tally.WrongQuestionIDs); err != nil {
		return 0, err
	}

	minutes := StudyMinutes(timeTakenSeconds)
	_, err = tx.Exec(
		`UPDATE users SET points = points + $2, total_study_minutes = total_study_minutes + $3 WHERE id = $1`,
		userID, PointsDelta(tally.Score), minutes,
	)
	if err != nil {
		return 0, fmt.Errorf("update user aggregates: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO study_logs (user_id, minutes, activity) VALUES ($1, $2, $3)`,
		userID, minutes, kind,
	)
	if err != nil {
		return 0, fmt.Errorf("insert study log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit submission: %w", err)
	}
	return resultID, nil
}

// GetResult returns a result and its answer records, scoped to the
// owning user.
func (s *Store) GetResult(userID, resultID int64) (*models.QuizResult, []models.ReviewAnswer, error) {
	var res models.QuizResult
	err := s.db.QueryRow(
		`SELECT id, user_id, quiz_type, subject, score, total_questions, attempted, correct, wrong,
		        accuracy, time_taken_seconds, created_at
		 FROM quiz_results WHERE id = $1 AND user_id = $2`,
		resultID, userID,
	).Scan(&res.ID, &res.UserID, &res.QuizType, &res.Subject, &res.Score,
		&res.TotalQuestions, &res.Attempted, &res.Correct, &res.Wrong,
		&res.Accuracy, &res.TimeTakenSeconds, &res.CreatedAt)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.db.Query(
		`SELECT a.id, a.user_id, a.quiz_result_id, a.question_id, a.selected_option, a.is_correct,
		        q.text, q.options, q.correct_option, q.explanation, q.subject
		 FROM user_answers a
		 JOIN questions q ON q.id = a.question_id
		 WHERE a.quiz_result_id = $1
		 ORDER BY a.id`,
		resultID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("get result answers: %w", err)
	}
	defer rows.Close()

	var answers []models.ReviewAnswer
	for rows.Next() {
		var a models.ReviewAnswer
		var optJSON []byte
		if err := rows.Scan(&a.ID, &a.UserID, &a.QuizResultID, &a.QuestionID,
			&a.SelectedOption, &a.IsCorrect,
			&a.QuestionText, &optJSON, &a.CorrectOption, &a.Explanation, &a.Subject); err != nil {
			return nil, nil, fmt.Errorf("scan result answer: %w", err)
		}
		if err := json.Unmarshal(optJSON, &a.Options); err != nil {
			return nil, nil, fmt.Errorf("decode options: %w", err)
		}
		answers = append(answers, a)
	}
	return &res, answers, rows.Err()
}

// GetUserResults returns all of a user's results, newest first.
func (s *Store) GetUserResults(userID int64) ([]models.QuizResult, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, quiz_type, subject, score, total_questions, attempted, correct, wrong,
		        accuracy, time_taken_seconds, created_at
		 FROM quiz_results WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get user results: %w", err)
	}
	defer rows.Close()

	var results []models.QuizResult
	for rows.Next() {
		var r models.QuizResult
		if err := rows.Scan(&r.ID, &r.UserID, &r.QuizType, &r.Subject, &r.Score,
			&r.TotalQuestions, &r.Attempted, &r.Correct, &r.Wrong,
			&r.Accuracy, &r.TimeTakenSeconds, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
