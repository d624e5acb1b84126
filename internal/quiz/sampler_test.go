package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
)

func makePool(n int) []models.Question {
	pool := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, models.Question{
			ID:      int64(i + 1),
			Subject: "Maths",
			Text:    fmt.Sprintf("Question %d", i+1),
		})
	}
	return pool
}

func TestSampleQuestions_EmptyPool(t *testing.T) {
	_, err := SampleQuestions(nil, 10)
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("SampleQuestions(empty, 10) error = %v, want ErrEmptyPool", err)
	}
}

func TestSampleQuestions_InvalidCount(t *testing.T) {
	if _, err := SampleQuestions(makePool(5), 0); err == nil {
		t.Error("SampleQuestions(pool, 0) should fail")
	}
	if _, err := SampleQuestions(makePool(5), -3); err == nil {
		t.Error("SampleQuestions(pool, -3) should fail")
	}
}

func TestSampleQuestions_DistinctWhenPoolLargeEnough(t *testing.T) {
	pool := makePool(50)

	for trial := 0; trial < 20; trial++ {
		got, err := SampleQuestions(pool, 10)
		if err != nil {
			t.Fatalf("SampleQuestions error: %v", err)
		}
		if len(got) != 10 {
			t.Fatalf("got %d questions, want 10", len(got))
		}

		seen := make(map[int64]bool)
		for _, q := range got {
			if seen[q.ID] {
				t.Fatalf("question %d drawn twice from a pool of 50", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSampleQuestions_ExactCountFromSmallPool(t *testing.T) {
	pool := makePool(3)

	got, err := SampleQuestions(pool, 10)
	if err != nil {
		t.Fatalf("SampleQuestions error: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d questions, want 10", len(got))
	}

	// Expansion covers ceil(10/3) = 4 copies, so no question may appear
	// more than 4 times.
	counts := make(map[int64]int)
	for _, q := range got {
		counts[q.ID]++
	}
	for id, n := range counts {
		if n > 4 {
			t.Errorf("question %d drawn %d times, expansion allows at most 4", id, n)
		}
	}
}

func TestSampleQuestions_SmallPoolUsesWholeCatalog(t *testing.T) {
	// Drawing 10 from 3 leaves at most 2 expanded instances unused, so
	// every pool question must be present.
	pool := makePool(3)

	got, err := SampleQuestions(pool, 10)
	if err != nil {
		t.Fatalf("SampleQuestions error: %v", err)
	}

	seen := make(map[int64]bool)
	for _, q := range got {
		seen[q.ID] = true
	}
	for _, q := range pool {
		if !seen[q.ID] {
			t.Errorf("question %d missing from an oversized draw", q.ID)
		}
	}
}

func TestSampleQuestions_RandomizesOrder(t *testing.T) {
	pool := makePool(30)

	first, err := SampleQuestions(pool, 30)
	if err != nil {
		t.Fatalf("SampleQuestions error: %v", err)
	}

	// With 30 questions a repeat of the same order across 10 draws is
	// effectively impossible.
	for trial := 0; trial < 10; trial++ {
		next, err := SampleQuestions(pool, 30)
		if err != nil {
			t.Fatalf("SampleQuestions error: %v", err)
		}
		if !sameOrder(first, next) {
			return
		}
	}
	t.Error("expected presentation order to vary across sessions")
}

func sameOrder(a, b []models.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func TestExpandIndices(t *testing.T) {
	tests := []struct {
		poolSize int
		count    int
		wantLen  int
	}{
		{10, 5, 10},  // no expansion needed
		{10, 10, 10}, // exact fit
		{3, 10, 12},  // 4 copies of 3
		{1, 7, 7},    // 7 copies of 1
		{5, 6, 10},   // 2 copies of 5
	}

	for _, tt := range tests {
		got := expandIndices(tt.poolSize, tt.count)
		if len(got) != tt.wantLen {
			t.Errorf("expandIndices(%d, %d) len = %d, want %d",
				tt.poolSize, tt.count, len(got), tt.wantLen)
		}
		if len(got) < tt.count {
			t.Errorf("expandIndices(%d, %d) too short to draw %d",
				tt.poolSize, tt.count, tt.count)
		}
	}
}
