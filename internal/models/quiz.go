package models

import "time"

type QuizKind string

const (
	KindTopicQuiz QuizKind = "Topic Quiz"
	KindMockTest  QuizKind = "Mock Test"
	KindRevision  QuizKind = "Revision"
)

// QuizResult is created exactly once per submission. After the scoring
// transaction commits it is never mutated.
type QuizResult struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	QuizType         QuizKind  `json:"quiz_type"`
	Subject          *string   `json:"subject,omitempty"`
	Score            float64   `json:"score"`
	TotalQuestions   int       `json:"total_questions"`
	Attempted        int       `json:"attempted"`
	Correct          int       `json:"correct"`
	Wrong            int       `json:"wrong"`
	Accuracy         float64   `json:"accuracy"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	CreatedAt        time.Time `json:"created_at"`
}

// UserAnswer records one answered question within a result.
// SelectedOption is empty when the question was left unattempted.
type UserAnswer struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"user_id"`
	QuizResultID   int64  `json:"quiz_result_id"`
	QuestionID     int64  `json:"question_id"`
	SelectedOption string `json:"selected_option"`
	IsCorrect      bool   `json:"is_correct"`
}

type SubmitQuizRequest struct {
	Topic            string           `json:"topic"`
	QuizType         QuizKind         `json:"type"`
	Answers          map[int64]string `json:"answers"`
	TimeTakenSeconds int              `json:"time_taken"`
}

type SubmitQuizResponse struct {
	Status             string  `json:"status"`
	ResultID           int64   `json:"result_id"`
	SkippedQuestionIDs []int64 `json:"skipped_question_ids,omitempty"`
}

// ReviewAnswer pairs a stored answer with its question for the results page.
type ReviewAnswer struct {
	UserAnswer
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Explanation   string   `json:"explanation"`
	Subject       string   `json:"subject"`
}

type ResultResponse struct {
	Result  QuizResult     `json:"result"`
	Answers []ReviewAnswer `json:"answers"`
}

type ChartPoint struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"score"`
	Date    string  `json:"date"`
	Total   int     `json:"total"`
}

type AnalyticsResponse struct {
	Results    []QuizResult `json:"results"`
	ChartData  []ChartPoint `json:"chart_data"`
	AvgScore   float64      `json:"avg_score"`
	TotalTests int          `json:"total_tests"`
}
