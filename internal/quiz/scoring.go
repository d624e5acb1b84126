package quiz

import (
	"math"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
)

// negativeMarkPenalty is the fraction of a mark deducted per wrong
// attempt (one-third negative marking).
const negativeMarkPenalty = 0.33

// ScoredAnswer is one resolved (question, selection) pair ready to be
// persisted as a UserAnswer.
type ScoredAnswer struct {
	QuestionID     int64
	SelectedOption string
	IsCorrect      bool
}

// Tally is the outcome of scoring one submission before persistence.
type Tally struct {
	Total     int
	Attempted int
	Correct   int
	Wrong     int
	Score     float64
	Accuracy  float64

	// Answers holds one entry per question id that resolved in the
	// catalog, attempted or not.
	Answers []ScoredAnswer

	// WrongQuestionIDs lists attempted-but-incorrect questions, for
	// mistake upserts.
	WrongQuestionIDs []int64

	// SkippedIDs lists submitted question ids absent from the catalog.
	// They produce no answer record and count toward nothing.
	SkippedIDs []int64
}

// ScoreSubmission evaluates submitted answers against the catalog.
// An empty selected option means the question was left unattempted.
// Correctness is exact string equality with the question's correct
// option.
func ScoreSubmission(answers map[int64]string, catalog map[int64]models.Question) Tally {
	t := Tally{Total: len(answers)}

	for questionID, selected := range answers {
		q, ok := catalog[questionID]
		if !ok {
			t.SkippedIDs = append(t.SkippedIDs, questionID)
			continue
		}

		isCorrect := false
		if selected != "" {
			t.Attempted++
			if selected == q.CorrectOption {
				t.Correct++
				isCorrect = true
			} else {
				t.WrongQuestionIDs = append(t.WrongQuestionIDs, questionID)
			}
		}

		t.Answers = append(t.Answers, ScoredAnswer{
			QuestionID:     questionID,
			SelectedOption: selected,
			IsCorrect:      isCorrect,
		})
	}

	t.Wrong = t.Attempted - t.Correct
	t.Score = round2(float64(t.Correct) - negativeMarkPenalty*float64(t.Wrong))
	if t.Attempted > 0 {
		t.Accuracy = round2(float64(t.Correct) / float64(t.Attempted) * 100)
	}
	return t
}

// PointsDelta converts a quiz score into leaderboard points.
func PointsDelta(score float64) int {
	return int(math.Floor(score * 10))
}

// StudyMinutes converts elapsed seconds into whole study minutes.
func StudyMinutes(timeTakenSeconds int) int {
	if timeTakenSeconds < 0 {
		return 0
	}
	return timeTakenSeconds / 60
}

func round2(v float64) float64 {
	return roundTo(v, 2)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
