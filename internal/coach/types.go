// Package coach generates LLM feedback on free-text interview answers. The
// feedback is advisory overlay content only; scoring and session flow never
// depend on it, and a missing or failed generation degrades to no overlay.
package coach

import (
	"github.com/adixit/intervue/internal/skills"
)

// Feedback is LLM-generated commentary on one free-text answer.
type Feedback struct {
	Skill      skills.Tag
	Assessment string
	Strengths  []string
	Gaps       []string
	ModelTip   string
}

// FeedbackInput holds all context needed to assess an answer.
type FeedbackInput struct {
	QuestionText string
	Skill        skills.Tag
	Keyword      string
	Answer       string
	Quality      int
	ElapsedSecs  float64
}

// Config holds feedback generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for feedback generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.4,
	}
}
