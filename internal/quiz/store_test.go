package quiz

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
)

type fakeResult struct{}

func (fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (fakeResult) RowsAffected() (int64, error) { return 1, nil }

// fakeExecer records statements so the write path can be inspected.
type fakeExecer struct {
	err     error
	queries []string
	args    [][]interface{}
}

func (f *fakeExecer) Exec(query string, args ...interface{}) (sql.Result, error) {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
	if f.err != nil {
		return nil, f.err
	}
	return fakeResult{}, nil
}

func TestUpsertMistakes_OneStatementPerWrongAnswer(t *testing.T) {
	db := &fakeExecer{}

	if err := upsertMistakes(db, 7, []int64{11, 12, 13}); err != nil {
		t.Fatalf("upsertMistakes error: %v", err)
	}
	if len(db.queries) != 3 {
		t.Fatalf("got %d statements, want 3", len(db.queries))
	}
	for i, want := range []int64{11, 12, 13} {
		args := db.args[i]
		if args[0] != int64(7) || args[1] != want {
			t.Errorf("statement %d args = %v, want [7 %d]", i, args, want)
		}
	}
}

func TestUpsertMistakes_AtomicIncrement(t *testing.T) {
	// The statement must insert-or-increment in one shot: a new pair
	// starts at count 1, an existing pair gains exactly 1, and a
	// mastered pair is reopened. Anything read-modify-write here would
	// race under concurrent submissions.
	db := &fakeExecer{}

	if err := upsertMistakes(db, 7, []int64{11}); err != nil {
		t.Fatalf("upsertMistakes error: %v", err)
	}

	q := db.queries[0]
	for _, fragment := range []string{
		"ON CONFLICT (user_id, question_id)",
		"count = mistakes.count + 1",
		"mastered = FALSE",
		"VALUES ($1, $2, 1, FALSE",
	} {
		if !strings.Contains(q, fragment) {
			t.Errorf("statement missing %q:\n%s", fragment, q)
		}
	}
	if strings.Contains(q, "SELECT") {
		t.Errorf("statement must not read before writing:\n%s", q)
	}
}

func TestUpsertMistakes_NoWrongAnswers(t *testing.T) {
	db := &fakeExecer{}

	if err := upsertMistakes(db, 7, nil); err != nil {
		t.Fatalf("upsertMistakes error: %v", err)
	}
	if len(db.queries) != 0 {
		t.Errorf("got %d statements for a clean submission, want 0", len(db.queries))
	}
}

func TestUpsertMistakes_ExecError(t *testing.T) {
	underlying := errors.New("deadlock detected")
	db := &fakeExecer{err: underlying}

	err := upsertMistakes(db, 7, []int64{11})
	if !errors.Is(err, underlying) {
		t.Fatalf("upsertMistakes exec failure: err = %v, want wrapped %v", err, underlying)
	}
}
