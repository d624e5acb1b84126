package quiz

import (
	"testing"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
)

func testCatalog() map[int64]models.Question {
	return map[int64]models.Question{
		1: {ID: 1, Subject: "Maths", CorrectOption: "2"},
		2: {ID: 2, Subject: "Maths", CorrectOption: "sqrt(2)"},
		3: {ID: 3, Subject: "GK", CorrectOption: "1757"},
	}
}

func TestScoreSubmission_OneCorrectOneSkipped(t *testing.T) {
	// Q1 answered correctly, Q2 left blank.
	tally := ScoreSubmission(map[int64]string{1: "2", 2: ""}, testCatalog())

	if tally.Total != 2 {
		t.Errorf("Total = %d, want 2", tally.Total)
	}
	if tally.Attempted != 1 || tally.Correct != 1 || tally.Wrong != 0 {
		t.Errorf("attempted/correct/wrong = %d/%d/%d, want 1/1/0",
			tally.Attempted, tally.Correct, tally.Wrong)
	}
	if tally.Score != 1.00 {
		t.Errorf("Score = %v, want 1.00", tally.Score)
	}
	if tally.Accuracy != 100.00 {
		t.Errorf("Accuracy = %v, want 100.00", tally.Accuracy)
	}
	// The blank answer still gets a record.
	if len(tally.Answers) != 2 {
		t.Errorf("len(Answers) = %d, want 2", len(tally.Answers))
	}
}

func TestScoreSubmission_AllWrong(t *testing.T) {
	tally := ScoreSubmission(map[int64]string{1: "wrong", 2: "wrong"}, testCatalog())

	if tally.Attempted != 2 || tally.Correct != 0 || tally.Wrong != 2 {
		t.Errorf("attempted/correct/wrong = %d/%d/%d, want 2/0/2",
			tally.Attempted, tally.Correct, tally.Wrong)
	}
	if tally.Score != -0.66 {
		t.Errorf("Score = %v, want -0.66", tally.Score)
	}
	if tally.Accuracy != 0.00 {
		t.Errorf("Accuracy = %v, want 0.00", tally.Accuracy)
	}
	if len(tally.WrongQuestionIDs) != 2 {
		t.Errorf("len(WrongQuestionIDs) = %d, want 2", len(tally.WrongQuestionIDs))
	}
}

func TestScoreSubmission_UnknownQuestionSkipped(t *testing.T) {
	tally := ScoreSubmission(map[int64]string{1: "2", 999: "anything"}, testCatalog())

	if tally.Total != 2 {
		t.Errorf("Total = %d, want 2 (submission size, not resolved size)", tally.Total)
	}
	if tally.Attempted != 1 || tally.Correct != 1 {
		t.Errorf("attempted/correct = %d/%d, want 1/1", tally.Attempted, tally.Correct)
	}
	if len(tally.SkippedIDs) != 1 || tally.SkippedIDs[0] != 999 {
		t.Errorf("SkippedIDs = %v, want [999]", tally.SkippedIDs)
	}
	if len(tally.Answers) != 1 {
		t.Errorf("len(Answers) = %d, want 1 (no record for unknown ids)", len(tally.Answers))
	}
}

func TestScoreSubmission_EmptySubmission(t *testing.T) {
	tally := ScoreSubmission(map[int64]string{}, testCatalog())

	if tally.Total != 0 || tally.Attempted != 0 {
		t.Errorf("total/attempted = %d/%d, want 0/0", tally.Total, tally.Attempted)
	}
	if tally.Score != 0 || tally.Accuracy != 0 {
		t.Errorf("score/accuracy = %v/%v, want 0/0", tally.Score, tally.Accuracy)
	}
}

func TestScoreSubmission_Invariants(t *testing.T) {
	tests := []struct {
		name    string
		answers map[int64]string
	}{
		{"mixed", map[int64]string{1: "2", 2: "nope", 3: ""}},
		{"all blank", map[int64]string{1: "", 2: "", 3: ""}},
		{"all correct", map[int64]string{1: "2", 2: "sqrt(2)", 3: "1757"}},
		{"with unknown", map[int64]string{1: "2", 42: "x", 3: "wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally := ScoreSubmission(tt.answers, testCatalog())

			if tally.Wrong != tally.Attempted-tally.Correct {
				t.Errorf("wrong = %d, want attempted-correct = %d",
					tally.Wrong, tally.Attempted-tally.Correct)
			}
			if tally.Correct+tally.Wrong > tally.Attempted {
				t.Errorf("correct+wrong (%d) exceeds attempted (%d)",
					tally.Correct+tally.Wrong, tally.Attempted)
			}
			if tally.Attempted > tally.Total {
				t.Errorf("attempted (%d) exceeds total (%d)", tally.Attempted, tally.Total)
			}
			if tally.Accuracy < 0 || tally.Accuracy > 100 {
				t.Errorf("accuracy %v out of [0,100]", tally.Accuracy)
			}
			if tally.Attempted == 0 && tally.Accuracy != 0 {
				t.Errorf("accuracy = %v with nothing attempted, want 0", tally.Accuracy)
			}
		})
	}
}

func TestPointsDelta(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{1.00, 10},
		{9.34, 93},
		{0, 0},
		{-0.66, -7}, // floor, not truncation
		{-2.00, -20},
	}

	for _, tt := range tests {
		if got := PointsDelta(tt.score); got != tt.want {
			t.Errorf("PointsDelta(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestStudyMinutes(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 0},
		{59, 0},
		{60, 1},
		{601, 10},
		{-5, 0},
	}

	for _, tt := range tests {
		if got := StudyMinutes(tt.seconds); got != tt.want {
			t.Errorf("StudyMinutes(%d) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}
