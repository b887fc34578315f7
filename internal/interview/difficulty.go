package interview

import "github.com/adixit/intervue/internal/bank"

// NextDifficulty applies the adaptation policy: a correct answer advances one
// tier with HARD as a fixed point, an incorrect answer keeps the current tier.
// Pure function; strike accumulation is tracked by the session state machine.
func NextDifficulty(current bank.Difficulty, correct bool) bank.Difficulty {
	if !correct {
		return current
	}
	switch current {
	case bank.Easy:
		return bank.Medium
	case bank.Medium:
		return bank.Hard
	default:
		return bank.Hard
	}
}

// tierAbove returns the next tier up, used when a tier's question list is
// exhausted. HARD has no tier above.
func tierAbove(d bank.Difficulty) (bank.Difficulty, bool) {
	switch d {
	case bank.Easy:
		return bank.Medium, true
	case bank.Medium:
		return bank.Hard, true
	default:
		return bank.Hard, false
	}
}
