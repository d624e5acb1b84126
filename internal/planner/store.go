package planner

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// PlanDashboard reads the user's subject history, seeds the daily plan
// when no task is pending, and returns the dashboard payload. The
// transaction takes a row lock on the user, so two concurrent dashboard
// loads run the pending check and any seeding one at a time and cannot
// both seed the plan.
func (s *Store) PlanDashboard(ctx context.Context, userID int64) (*models.DashboardResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`SELECT id FROM users WHERE id = $1 FOR UPDATE`, userID); err != nil {
		return nil, fmt.Errorf("lock user: %w", err)
	}

	stats, err := subjectStatsTx(tx, userID)
	if err != nil {
		return nil, err
	}
	weakSubject := WeakSubject(stats)

	var pending int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND completed = FALSE`,
		userID,
	).Scan(&pending)
	if err != nil {
		return nil, fmt.Errorf("count pending tasks: %w", err)
	}

	if pending == 0 {
		titles := []string{
			fmt.Sprintf("Practice 20 Qs of %s", weakSubject),
			"Take 1 Mock Test",
		}
		for _, title := range titles {
			_, err := tx.Exec(
				`INSERT INTO tasks (user_id, title, kind) VALUES ($1, $2, $3)`,
				userID, title, models.TaskSystem,
			)
			if err != nil {
				return nil, fmt.Errorf("seed daily task: %w", err)
			}
		}
	}

	tasks, err := listTasksTx(tx, userID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit dashboard plan: %w", err)
	}

	return &models.DashboardResponse{
		WeakSubject: weakSubject,
		Tasks:       tasks,
		Progress:    Progress(completed, len(tasks)),
	}, nil
}

func subjectStatsTx(tx *sql.Tx, userID int64) ([]SubjectStats, error) {
	rows, err := tx.Query(
		`SELECT subject, COALESCE(SUM(correct), 0), COALESCE(SUM(total_questions), 0)
		 FROM quiz_results
		 WHERE user_id = $1 AND subject IS NOT NULL
		 GROUP BY subject
		 ORDER BY subject`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("subject stats: %w", err)
	}
	defer rows.Close()

	var stats []SubjectStats
	for rows.Next() {
		var s SubjectStats
		if err := rows.Scan(&s.Subject, &s.Correct, &s.Total); err != nil {
			return nil, fmt.Errorf("scan subject stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func listTasksTx(tx *sql.Tx, userID int64) ([]models.Task, error) {
	rows, err := tx.Query(
		`SELECT id, user_id, title, completed, kind, created_at
		 FROM tasks WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// ListTasks returns all of the user's tasks, oldest first.
func (s *Store) ListTasks(userID int64) ([]models.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, completed, kind, created_at
		 FROM tasks WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func collectTasks(rows *sql.Rows) ([]models.Task, error) {
	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.Kind, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// AddTask creates a user-authored task.
func (s *Store) AddTask(userID int64, title string) (*models.Task, error) {
	var t models.Task
	err := s.db.QueryRow(
		`INSERT INTO tasks (user_id, title, kind)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, title, completed, kind, created_at`,
		userID, title, models.TaskCustom,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.Kind, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	return &t, nil
}

// ToggleTask flips completion on a task the user owns.
func (s *Store) ToggleTask(userID, taskID int64) error {
	res, err := s.db.Exec(
		`UPDATE tasks SET completed = NOT completed WHERE id = $1 AND user_id = $2`,
		taskID, userID,
	)
	if err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}
	return requireRow(res)
}

// DeleteTask removes a task the user owns.
func (s *Store) DeleteTask(userID, taskID int64) error {
	res, err := s.db.Exec(
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
