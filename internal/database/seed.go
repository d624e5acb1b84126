package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
)

type seedQuestion struct {
	subject       string
	topic         string
	text          string
	options       []string
	correctOption string
	explanation   string
	difficulty    models.Difficulty
}

var seedQuestions = []seedQuestion{
	// Maths
	{"Maths", "Algebra", "If x + 1/x = 2, find x^100 + 1/x^100.",
		[]string{"0", "1", "2", "100"}, "2",
		"If x + 1/x = 2, then x = 1. So 1^100 + 1/1^100 = 1 + 1 = 2.", models.DifficultyEasy},
	{"Maths", "Percentage", "If A is 20% more than B, B is how much percent less than A?",
		[]string{"16.66%", "20%", "25%", "33.33%"}, "16.66%",
		"Let B=100, A=120. Diff=20. % Less = (20/120)*100 = 16.66%.", models.DifficultyMedium},
	{"Maths", "Trigonometry", "Value of sin(45) + cos(45)?",
		[]string{"1", "sqrt(2)", "2", "1/sqrt(2)"}, "sqrt(2)",
		"1/sqrt(2) + 1/sqrt(2) = 2/sqrt(2) = sqrt(2).", models.DifficultyEasy},
	{"Maths", "Time & Work", "A can do a work in 10 days, B in 15 days. Together?",
		[]string{"5 days", "6 days", "8 days", "12 days"}, "6 days",
		"1/10 + 1/15 = 5/30 = 1/6. So 6 days.", models.DifficultyMedium},
	{"Maths", "Profit Loss", "CP=100, SP=120. Profit %?",
		[]string{"10%", "20%", "15%", "25%"}, "20%",
		"Profit = 20. % = (20/100)*100 = 20%.", models.DifficultyEasy},
	{"Maths", "Number System", "Remainder when 7^100 is divided by 5?",
		[]string{"1", "2", "3", "4"}, "1",
		"7^100 mod 5 = 2^100 mod 5. 2^4=16=1 mod 5, 100 divisible by 4, so 1.", models.DifficultyHard},

	// Reasoning
	{"Reasoning", "Analogy", "Virus : Smallpox :: Bacteria : ?",
		[]string{"Typhoid", "Malaria", "Covid", "Sleeping Sickness"}, "Typhoid",
		"Smallpox is caused by Virus, Typhoid by Bacteria.", models.DifficultyEasy},
	{"Reasoning", "Series", "2, 6, 12, 20, 30, ...?",
		[]string{"40", "42", "44", "48"}, "42",
		"+4, +6, +8, +10, +12. 30+12=42.", models.DifficultyMedium},
	{"Reasoning", "Coding", "If CAT = 24, DOG = ?",
		[]string{"24", "25", "26", "27"}, "26",
		"C(3)+A(1)+T(20)=24. D(4)+O(15)+G(7)=26.", models.DifficultyMedium},
	{"Reasoning", "Direction", "A man walks 5km North, turns Right walks 5km. Direction from start?",
		[]string{"North", "North-East", "East", "South-East"}, "North-East",
		"Standard direction diagram.", models.DifficultyEasy},

	// GK
	{"GK", "Polity", "Fundamental Rights borrowed from?",
		[]string{"UK", "USA", "Canada", "Ireland"}, "USA",
		"Fundamental Rights are from US Constitution.", models.DifficultyMedium},
	{"GK", "History", "Battle of Plassey fought in?",
		[]string{"1757", "1764", "1857", "1947"}, "1757",
		"1757 between Siraj-ud-Daulah and British.", models.DifficultyMedium},
	{"GK", "Geography", "Longest river in India?",
		[]string{"Ganga", "Yamuna", "Godavari", "Brahmaputra"}, "Ganga",
		"Ganga is the longest river entirely in India.", models.DifficultyEasy},

	// Science
	{"Science", "Physics", "Unit of Force?",
		[]string{"Joule", "Newton", "Watt", "Pascal"}, "Newton",
		"Newton is the SI unit of Force.", models.DifficultyEasy},
	{"Science", "Chemistry", "pH of pure water?",
		[]string{"0", "7", "14", "1"}, "7",
		"Neutral pH is 7.", models.DifficultyEasy},
	{"Science", "Biology", "Universal Donor Blood Group?",
		[]string{"A", "B", "AB", "O-"}, "O-",
		"O negative is universal donor.", models.DifficultyMedium},
}

// SeedQuestions loads the starter catalog when the questions table is
// empty. Each base question is inserted five times to give mock tests
// enough volume to draw from.
func SeedQuestions(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for rep := 0; rep < 5; rep++ {
		for _, q := range seedQuestions {
			optJSON, err := json.Marshal(q.options)
			if err != nil {
				return fmt.Errorf("marshal options: %w", err)
			}
			_, err = tx.Exec(
				`INSERT INTO questions (subject, topic, text, options, correct_option, explanation, difficulty)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				q.subject, q.topic, q.text, optJSON, q.correctOption, q.explanation, q.difficulty,
			)
			if err != nil {
				return fmt.Errorf("insert seed question: %w", err)
			}
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	log.Printf("[database] seeded %d questions", inserted)
	return nil
}
