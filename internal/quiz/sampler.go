package quiz

import (
	"errors"
	"math/rand"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
)

// ErrEmptyPool means no questions are available for the requested
// sample. Callers must surface this rather than serve an empty quiz.
var ErrEmptyPool = errors.New("no questions available")

// SampleQuestions draws count questions from the pool, uniformly at
// random, in random order.
//
// When the pool has at least count questions the draw is without
// replacement, so all returned questions are distinct. When the pool is
// smaller, its indices are repeated up to the ceiling multiple of count
// and the draw runs without replacement over the expanded indices: the
// same question can then appear more than once, but never the same
// expanded instance.
func SampleQuestions(pool []models.Question, count int) ([]models.Question, error) {
	if count <= 0 {
		return nil, errors.New("count must be positive")
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	indices := expandIndices(len(pool), count)
	rand.Shuffle(len(indices), func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })

	out := make([]models.Question, 0, count)
	for _, idx := range indices[:count] {
		out = append(out, pool[idx])
	}
	return out, nil
}

// expandIndices returns pool indices repeated until at least count
// entries exist. For poolSize >= count that is a single copy, so a
// shuffled prefix stays distinct.
func expandIndices(poolSize, count int) []int {
	copies := 1
	if poolSize < count {
		copies = (count + poolSize - 1) / poolSize
	}

	indices := make([]int, 0, poolSize*copies)
	for c := 0; c < copies; c++ {
		for i := 0; i < poolSize; i++ {
			indices = append(indices, i)
		}
	}
	return indices
}
