package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Question is a catalog entry. The catalog is read-only at serving time:
// rows are created by the seeder and never mutated afterwards.
type Question struct {
	ID            int64      `json:"id"`
	Subject       string     `json:"subject"`
	Topic         string     `json:"topic"`
	Text          string     `json:"text"`
	Options       []string   `json:"options"`
	CorrectOption string     `json:"correct_option"`
	Explanation   string     `json:"explanation"`
	Difficulty    Difficulty `json:"difficulty"`
}

// QuizQuestion is a Question with the answer key stripped for serving.
type QuizQuestion struct {
	ID      int64    `json:"id"`
	Subject string   `json:"subject"`
	Topic   string   `json:"topic"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

func (q Question) ToQuizQuestion() QuizQuestion {
	return QuizQuestion{
		ID:      q.ID,
		Subject: q.Subject,
		Topic:   q.Topic,
		Text:    q.Text,
		Options: q.Options,
	}
}

type QuizPageResponse struct {
	Subject   string         `json:"subject,omitempty"`
	Questions []QuizQuestion `json:"questions"`
	Total     int            `json:"total"`
}
