package interview

import (
	"testing"
	"time"
)

func TestRemaining(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limit := 30 * time.Second

	cases := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"at start", start, 30 * time.Second},
		{"mid question", start.Add(12 * time.Second), 18 * time.Second},
		{"exactly at limit", start.Add(30 * time.Second), 0},
		{"past limit clamps to zero", start.Add(2 * time.Minute), 0},
		{"clock before start", start.Add(-5 * time.Second), 30 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Remaining(start, tc.now, limit)
			if got != tc.want {
				t.Errorf("Remaining = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRemaining_MonotonicInNow(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limit := 20 * time.Second

	prev := Remaining(start, start, limit)
	for i := 1; i <= 40; i++ {
		now := start.Add(time.Duration(i) * time.Second)
		cur := Remaining(start, now, limit)
		if cur > prev {
			t.Fatalf("remaining increased from %v to %v at t+%ds", prev, cur, i)
		}
		if cur < 0 {
			t.Fatalf("remaining went negative: %v", cur)
		}
		prev = cur
	}
}
