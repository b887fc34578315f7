package interview

import (
	"testing"
	"time"
)

func TestScoreMultipleChoice(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.ScoreMultipleChoice("WHERE", "WHERE"); got != 20 {
		t.Errorf("exact match = %d, want 20", got)
	}
	if got := cfg.ScoreMultipleChoice("  where ", "WHERE"); got != 20 {
		t.Errorf("case/space-insensitive match = %d, want 20", got)
	}
	if got := cfg.ScoreMultipleChoice("ORDER BY", "WHERE"); got != 0 {
		t.Errorf("wrong option = %d, want 0", got)
	}
}

func TestScoreFreeText(t *testing.T) {
	cfg := DefaultConfig()
	long := "I would reproduce the bug, add logging, then bisect the change."

	cases := []struct {
		name    string
		answer  string
		keyword string
		elapsed time.Duration
		want    int
	}{
		{"all three heuristics", long + " Then debug it.", "debug", 10 * time.Second, 100},
		{"length and keyword, slow", long + " Then debug it.", "debug", 50 * time.Second, 80},
		{"length only", long, "kubernetes", 50 * time.Second, 40},
		{"keyword only", "debug", "debug", 50 * time.Second, 40},
		{"speed only", "yes", "debug", 5 * time.Second, 20},
		{"keyword is case-insensitive", "I always DEBUG first, then read the stack trace.", "debug", 50 * time.Second, 80},
		{"empty answer, slow", "", "debug", 59 * time.Second, 0},
		{"boundary: exactly 40% of limit is not fast", "x", "y", 24 * time.Second, 0},
		{"boundary: 20 chars is not long", "aaaaaaaaaaaaaaaaaaaa", "zz", 50 * time.Second, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cfg.ScoreFreeText(tc.answer, tc.keyword, tc.elapsed)
			if got != tc.want {
				t.Errorf("ScoreFreeText = %d, want %d", got, tc.want)
			}
		})
	}
}
