package bank

import "github.com/adixit/intervue/internal/skills"

// Difficulty is a question tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// AllDifficulties returns the tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// DisplayName returns a human-readable name for a difficulty tier.
func (d Difficulty) DisplayName() string {
	switch d {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	default:
		return string(d)
	}
}

// Format describes how the candidate answers a question.
type Format string

const (
	// FormatMultipleChoice means the candidate picks one of the options.
	FormatMultipleChoice Format = "multiple_choice"

	// FormatFreeText means the candidate types an open-ended answer.
	FormatFreeText Format = "free_text"
)

// Question is a single catalog entry. Immutable once loaded into a Bank.
type Question struct {
	// Text is the question prompt shown to the candidate.
	Text string

	// Format indicates how the candidate answers.
	Format Format

	// Options holds the multiple-choice options in display order.
	// Empty for free-text questions.
	Options []string

	// Answer is the correct option text for multiple-choice questions.
	Answer string

	// Keyword is the expected keyword for free-text scoring.
	// Empty for multiple-choice questions.
	Keyword string

	// Skill is the skill tag this question probes.
	Skill skills.Tag

	// Difficulty is the tier this question belongs to.
	Difficulty Difficulty
}
