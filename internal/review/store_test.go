package review

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
)

type fakeResult struct {
	affected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

// fakeExecer records statements and returns a canned row count.
type fakeExecer struct {
	affected int64
	err      error
	queries  []string
	args     [][]interface{}
}

func (f *fakeExecer) Exec(query string, args ...interface{}) (sql.Result, error) {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
	if f.err != nil {
		return nil, f.err
	}
	return fakeResult{affected: f.affected}, nil
}

func TestMarkMastered_NoRecord(t *testing.T) {
	db := &fakeExecer{affected: 0}

	err := markMastered(db, 1, 42)
	if !errors.Is(err, ErrMistakeNotFound) {
		t.Fatalf("markMastered with no matching row: err = %v, want ErrMistakeNotFound", err)
	}
}

func TestMarkMastered_Succeeds(t *testing.T) {
	db := &fakeExecer{affected: 1}

	if err := markMastered(db, 1, 42); err != nil {
		t.Fatalf("markMastered error: %v", err)
	}
	if len(db.args) != 1 {
		t.Fatalf("got %d statements, want 1", len(db.queries))
	}
	if got := db.args[0]; got[0] != int64(1) || got[1] != int64(42) {
		t.Errorf("statement args = %v, want [1 42]", got)
	}
}

func TestMarkMastered_Idempotent(t *testing.T) {
	// The second call hits a row that is already mastered. The UPDATE
	// matches it anyway, so the call succeeds instead of reporting
	// not-found.
	db := &fakeExecer{affected: 1}

	if err := markMastered(db, 1, 42); err != nil {
		t.Fatalf("first markMastered error: %v", err)
	}
	if err := markMastered(db, 1, 42); err != nil {
		t.Fatalf("repeat markMastered error: %v", err)
	}

	for _, q := range db.queries {
		if strings.Contains(q, "mastered = FALSE") {
			t.Errorf("statement filters on the current mastered value, breaking idempotence:\n%s", q)
		}
		if !strings.Contains(q, "WHERE user_id = $1 AND question_id = $2") {
			t.Errorf("statement must match on the (user, question) pair only:\n%s", q)
		}
	}
}

func TestMarkMastered_ExecError(t *testing.T) {
	underlying := errors.New("connection reset")
	db := &fakeExecer{err: underlying}

	err := markMastered(db, 1, 42)
	if !errors.Is(err, underlying) {
		t.Fatalf("markMastered exec failure: err = %v, want wrapped %v", err, underlying)
	}
	if errors.Is(err, ErrMistakeNotFound) {
		t.Error("exec failure must not be reported as a missing record")
	}
}
