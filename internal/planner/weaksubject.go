package planner

// DefaultWeakSubject is recommended when no subject has enough attempt
// volume to judge.
const DefaultWeakSubject = "Maths"

// minQualifyingTotal is the attempt volume a subject must exceed before
// its accuracy counts toward the recommendation.
const minQualifyingTotal = 10

// SubjectStats aggregates a user's historical results for one subject.
type SubjectStats struct {
	Subject string
	Correct int
	Total   int
}

// WeakSubject picks the qualifying subject with the lowest historical
// accuracy. Subjects with total attempts of minQualifyingTotal or fewer
// are ignored; with no qualifying subject the default is returned.
func WeakSubject(stats []SubjectStats) string {
	weak := DefaultWeakSubject
	minAcc := 100.0

	for _, s := range stats {
		if s.Total <= minQualifyingTotal {
			continue
		}
		acc := float64(s.Correct) / float64(s.Total) * 100
		if acc < minAcc {
			minAcc = acc
			weak = s.Subject
		}
	}
	return weak
}

// Progress is the completed share of a task list as a truncated percent.
// Zero when the user has no tasks at all.
func Progress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return completed * 100 / total
}
