package store

import (
	"context"
	"time"
)

// SessionEventData captures one session lifecycle transition: started,
// terminated, or completed.
type SessionEventData struct {
	SessionID       string
	Action          string
	Phase           string
	Score           int
	Strikes         int
	QuestionsServed int
	CorrectAnswers  int
	SkillMatchPct   int
	DurationSecs    float64
}

// AnswerEventData captures one resolved question: a submission or a timeout.
type AnswerEventData struct {
	SessionID       string
	Skill           string
	Difficulty      string
	QuestionText    string
	AnswerFormat    string
	ExpectedAnswer  string
	CandidateAnswer string
	Correct         bool
	TimedOut        bool
	Points          int
	Quality         int
	TimeMs          int64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummary is the latest recorded state of one session, used by the
// history screen and the sessions command.
type SessionSummary struct {
	SessionID       string
	Timestamp       time.Time
	Action          string
	Phase           string
	Score           int
	Strikes         int
	QuestionsServed int
	CorrectAnswers  int
	SkillMatchPct   int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one resolved question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListSessions returns the most recent state of up to limit sessions,
	// newest first. limit <= 0 means no limit.
	ListSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// SkillAccuracy returns the fraction of answers for a skill that were
	// correct across all sessions, or 0 when the skill was never asked.
	SkillAccuracy(ctx context.Context, skill string) (float64, error)
}
