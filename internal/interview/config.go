package interview

import (
	"time"

	"github.com/adixit/intervue/internal/bank"
)

// Config holds the session policy constants. The defaults reproduce the
// reference behavior; every value is a policy knob, not a derived quantity.
type Config struct {
	// FlatReward is the score awarded for a correct multiple-choice answer.
	// There is no partial credit for multiple choice.
	FlatReward int

	// MaxStrikes is the number of incorrect-or-timed-out outcomes that
	// terminates the session early.
	MaxStrikes int

	// TimeLimits maps each tier to its multiple-choice time limit.
	TimeLimits map[bank.Difficulty]time.Duration

	// FreeTextLimit is the flat time limit for free-text questions.
	FreeTextLimit time.Duration

	// FreeTextPassMark is the minimum free-text quality score (0-100)
	// counted as a correct outcome.
	FreeTextPassMark int
}

// DefaultConfig returns the standard session policy.
func DefaultConfig() Config {
	return Config{
		FlatReward: 20,
		MaxStrikes: 2,
		TimeLimits: map[bank.Difficulty]time.Duration{
			bank.Easy:   30 * time.Second,
			bank.Medium: 20 * time.Second,
			bank.Hard:   20 * time.Second,
		},
		FreeTextLimit:    60 * time.Second,
		FreeTextPassMark: 40,
	}
}

// LimitFor returns the time limit that applies to a question.
func (c Config) LimitFor(q bank.Question) time.Duration {
	if q.Format == bank.FormatFreeText {
		return c.FreeTextLimit
	}
	return c.TimeLimits[q.Difficulty]
}
