package bank

import (
	"errors"
	"fmt"
)

// ErrNoQuestions is returned when a requested tier has no registered questions.
var ErrNoQuestions = errors.New("no questions registered for difficulty")

// ConfigurationError reports an invalid catalog. It is fatal: the bank is
// validated once at startup and never changes afterwards.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid question catalog: " + e.Reason
}

// Bank is a read-only, difficulty-tiered question catalog. Question order
// within a tier follows catalog insertion order so sessions are reproducible.
type Bank struct {
	byTier map[Difficulty][]Question
}

// New builds a Bank from a flat question list, preserving insertion order
// within each tier. Every tier must have at least one question; multiple
// choice questions must have at least two options and a correct answer that
// matches one of them.
func New(questions []Question) (*Bank, error) {
	byTier := make(map[Difficulty][]Question)
	for i, q := range questions {
		if err := validateQuestion(i, q); err != nil {
			return nil, err
		}
		byTier[q.Difficulty] = append(byTier[q.Difficulty], q)
	}

	for _, tier := range AllDifficulties() {
		if len(byTier[tier]) == 0 {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("tier %q has no questions", tier),
			}
		}
	}

	return &Bank{byTier: byTier}, nil
}

// QuestionsFor returns the ordered question list for a tier.
func (b *Bank) QuestionsFor(d Difficulty) ([]Question, error) {
	qs, ok := b.byTier[d]
	if !ok || len(qs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoQuestions, d)
	}
	return qs, nil
}

// TierSize returns the number of questions in a tier, 0 if the tier is unknown.
func (b *Bank) TierSize(d Difficulty) int {
	return len(b.byTier[d])
}

// Size returns the total number of questions in the bank.
func (b *Bank) Size() int {
	n := 0
	for _, qs := range b.byTier {
		n += len(qs)
	}
	return n
}

func validateQuestion(idx int, q Question) error {
	if q.Text == "" {
		return &ConfigurationError{Reason: fmt.Sprintf("question %d has empty text", idx)}
	}
	if q.Skill == "" {
		return &ConfigurationError{Reason: fmt.Sprintf("question %d has no skill tag", idx)}
	}

	switch q.Format {
	case FormatMultipleChoice:
		if len(q.Options) < 2 {
			return &ConfigurationError{
				Reason: fmt.Sprintf("question %d needs at least 2 options, has %d", idx, len(q.Options)),
			}
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.Answer {
				found = true
				break
			}
		}
		if !found {
			return &ConfigurationError{
				Reason: fmt.Sprintf("question %d answer %q is not among its options", idx, q.Answer),
			}
		}
	case FormatFreeText:
		if q.Keyword == "" {
			return &ConfigurationError{
				Reason: fmt.Sprintf("free-text question %d has no expected keyword", idx),
			}
		}
	default:
		return &ConfigurationError{
			Reason: fmt.Sprintf("question %d has unknown format %q", idx, q.Format),
		}
	}
	return nil
}
