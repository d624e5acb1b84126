package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
)

// ErrInvalidQuizKind means the submission named a quiz type the engine
// does not recognize.
var ErrInvalidQuizKind = errors.New("invalid quiz type")

// MockQuestionCount is the fixed size of a full mock test.
const MockQuestionCount = 100

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// SampleQuiz builds a quiz of count questions. A non-empty subject
// restricts the pool to that subject; if that leaves nothing the pool
// widens to the whole catalog before sampling. An empty catalog is
// ErrEmptyPool.
func (s *Service) SampleQuiz(subject string, count int) ([]models.QuizQuestion, error) {
	var pool []models.Question
	var err error

	if subject != "" {
		pool, err = s.store.GetQuestionsBySubject(subject)
		if err != nil {
			return nil, fmt.Errorf("fetch pool: %w", err)
		}
	}
	if len(pool) == 0 {
		pool, err = s.store.GetAllQuestions()
		if err != nil {
			return nil, fmt.Errorf("fetch pool: %w", err)
		}
	}

	sampled, err := SampleQuestions(pool, count)
	if err != nil {
		return nil, err
	}

	out := make([]models.QuizQuestion, 0, len(sampled))
	for _, q := range sampled {
		out = append(out, q.ToQuizQuestion())
	}
	return out, nil
}

// SampleMock builds a mixed 100-question mock from the whole catalog.
func (s *Service) SampleMock() ([]models.QuizQuestion, error) {
	return s.SampleQuiz("", MockQuestionCount)
}

// SubmitQuiz scores a submission and persists the result atomically.
// Question ids that no longer resolve in the catalog are tolerated:
// they are skipped, logged, and reported back in the response.
func (s *Service) SubmitQuiz(ctx context.Context, userID int64, req models.SubmitQuizRequest) (*models.SubmitQuizResponse, error) {
	kind, err := normalizeQuizKind(req.QuizType)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(req.Answers))
	for id := range req.Answers {
		ids = append(ids, id)
	}

	catalog, err := s.store.GetQuestionsByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("resolve questions: %w", err)
	}

	tally := ScoreSubmission(req.Answers, catalog)
	if len(tally.SkippedIDs) > 0 {
		log.Printf("[quiz] user %d submitted %d unknown question ids: %v",
			userID, len(tally.SkippedIDs), tally.SkippedIDs)
	}

	var subject *string
	if req.Topic != "" {
		subject = &req.Topic
	}

	resultID, err := s.store.SaveSubmission(ctx, userID, kind, subject, req.TimeTakenSeconds, tally)
	if err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}

	return &models.SubmitQuizResponse{
		Status:             "success",
		ResultID:           resultID,
		SkippedQuestionIDs: tally.SkippedIDs,
	}, nil
}

// normalizeQuizKind defaults a blank type to a topic quiz and rejects
// anything outside the known kinds.
func normalizeQuizKind(kind models.QuizKind) (models.QuizKind, error) {
	switch kind {
	case "":
		return models.KindTopicQuiz, nil
	case models.KindTopicQuiz, models.KindMockTest, models.KindRevision:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidQuizKind, kind)
	}
}

// GetResult returns a result with its answer records for review.
func (s *Service) GetResult(userID, resultID int64) (*models.ResultResponse, error) {
	result, answers, err := s.store.GetResult(userID, resultID)
	if err != nil {
		return nil, err
	}
	if answers == nil {
		answers = []models.ReviewAnswer{}
	}
	return &models.ResultResponse{Result: *result, Answers: answers}, nil
}

// GetAnalytics summarizes a user's result history for charts.
func (s *Service) GetAnalytics(userID int64) (*models.AnalyticsResponse, error) {
	results, err := s.store.GetUserResults(userID)
	if err != nil {
		return nil, err
	}

	chart := make([]models.ChartPoint, 0, len(results))
	var scoreSum float64
	for _, r := range results {
		subject := "Mix"
		if r.Subject != nil {
			subject = *r.Subject
		}
		chart = append(chart, models.ChartPoint{
			Subject: subject,
			Score:   r.Score,
			Date:    r.CreatedAt.Format("2006-01-02"),
			Total:   r.TotalQuestions,
		})
		scoreSum += r.Score
	}

	avg := 0.0
	if len(results) > 0 {
		avg = roundTo(scoreSum/float64(len(results)), 1)
	}

	if results == nil {
		results = []models.QuizResult{}
	}

	return &models.AnalyticsResponse{
		Results:    results,
		ChartData:  chart,
		AvgScore:   avg,
		TotalTests: len(results),
	}, nil
}
