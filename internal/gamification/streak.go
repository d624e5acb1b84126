package gamification

import "time"

// NextStreak applies the consecutive-day streak rule. The comparison is
// on calendar dates (UTC), not wall-clock deltas.
//
//	no prior study date      → 1
//	prior date is yesterday  → current + 1
//	prior date is today      → current (repeat login, no change)
//	prior date is older      → 1 (streak broken)
//	prior date is in future  → current (clock skew, leave untouched)
func NextStreak(current int, lastStudy *time.Time, now time.Time) int {
	if lastStudy == nil {
		return 1
	}

	delta := daysBetween(*lastStudy, now)
	switch {
	case delta == 1:
		return current + 1
	case delta > 1:
		return 1
	default:
		return current
	}
}

// daysBetween returns the number of calendar days from the date of `from`
// to the date of `to`. Negative when `from` is later.
func daysBetween(from, to time.Time) int {
	f := truncateToDay(from)
	t := truncateToDay(to)
	return int(t.Sub(f).Hours() / 24)
}

func truncateToDay(ts time.Time) time.Time {
	u := ts.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
