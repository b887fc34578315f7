package interview

import "time"

// Remaining returns the time left on a question, floor-clamped to zero.
// Monotonic in now: it never increases as now advances and never goes
// negative. A now before start reports the full limit.
func Remaining(start, now time.Time, limit time.Duration) time.Duration {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		return limit
	}
	left := limit - elapsed
	if left < 0 {
		return 0
	}
	return left
}
