package planner

import "testing"

func TestWeakSubject(t *testing.T) {
	tests := []struct {
		name  string
		stats []SubjectStats
		want  string
	}{
		{
			name: "lowest accuracy wins",
			stats: []SubjectStats{
				{Subject: "Maths", Correct: 3, Total: 20},     // 15%
				{Subject: "Reasoning", Correct: 8, Total: 20}, // 40%
			},
			want: "Maths",
		},
		{
			name: "low accuracy but thin data is ignored",
			stats: []SubjectStats{
				{Subject: "GK", Correct: 0, Total: 5},          // 0% but only 5 attempts
				{Subject: "Reasoning", Correct: 10, Total: 20}, // 50%
			},
			want: "Reasoning",
		},
		{
			name: "exactly ten attempts does not qualify",
			stats: []SubjectStats{
				{Subject: "Science", Correct: 1, Total: 10},
			},
			want: DefaultWeakSubject,
		},
		{
			name: "eleven attempts qualifies",
			stats: []SubjectStats{
				{Subject: "Science", Correct: 1, Total: 11},
			},
			want: "Science",
		},
		{
			name:  "no data falls back to default",
			stats: nil,
			want:  DefaultWeakSubject,
		},
		{
			name: "perfect accuracy everywhere falls back to default",
			stats: []SubjectStats{
				{Subject: "GK", Correct: 20, Total: 20},
			},
			want: DefaultWeakSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeakSubject(tt.stats); got != tt.want {
				t.Errorf("WeakSubject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		completed int
		total     int
		want      int
	}{
		{0, 0, 0},  // no tasks at all
		{0, 2, 0},
		{1, 2, 50},
		{2, 2, 100},
		{1, 3, 33}, // truncated, not rounded
		{2, 3, 66},
	}

	for _, tt := range tests {
		if got := Progress(tt.completed, tt.total); got != tt.want {
			t.Errorf("Progress(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}
