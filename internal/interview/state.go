package interview

import (
	"time"

	"github.com/adixit/intervue/internal/bank"
	"github.com/adixit/intervue/internal/skills"
)

// Phase is the lifecycle stage of an interview session.
type Phase string

const (
	PhaseIntake     Phase = "intake"
	PhaseInterview  Phase = "interview"
	PhaseTerminated Phase = "terminated"
	PhaseReport     Phase = "report"
)

// Terminal reports whether no further answers or ticks are accepted.
func (p Phase) Terminal() bool {
	return p == PhaseTerminated || p == PhaseReport
}

// State is the full mutable record of one interview session. It is owned by a
// single Engine and is never shared across goroutines.
type State struct {
	SessionID string
	Phase     Phase

	// Intake results.
	ResumeSkills  skills.Set
	JDSkills      skills.Set
	SkillMatchPct int

	// Interview cursor.
	Difficulty    bank.Difficulty
	QuestionIndex int
	QuestionStart time.Time

	// Accumulators.
	Score         int
	Strikes       int
	TotalAnswered int
	TotalCorrect  int
	SkillScore    map[skills.Tag]int
	ResponseTimes []time.Duration
	StartedAt     time.Time
	FinishedAt    time.Time
}

// NewState returns a fresh session in the intake phase at the easy tier.
func NewState(sessionID string) *State {
	return &State{
		SessionID:  sessionID,
		Phase:      PhaseIntake,
		Difficulty: bank.Easy,
		SkillScore: make(map[skills.Tag]int),
	}
}
