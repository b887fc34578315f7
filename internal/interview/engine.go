package interview

import (
	"time"

	"github.com/adixit/intervue/internal/bank"
	"github.com/adixit/intervue/internal/skills"
)

// Engine drives one interview session through its phases. All methods take
// explicit clock readings so the caller's tick loop is the only source of
// time; the engine never reads the wall clock itself.
//
// The engine is not safe for concurrent use. The TUI event loop delivers
// ticks and submissions sequentially, which is the only supported usage.
type Engine struct {
	bank  *bank.Bank
	cfg   Config
	state *State
}

// Resolution describes the outcome of one answered or timed-out question.
type Resolution struct {
	Question bank.Question
	Answer   string
	Correct  bool
	TimedOut bool
	Points   int
	Quality  int // free-text only, 0-100
	Elapsed  time.Duration

	// TierChanged reports whether the difficulty tier moved, either by the
	// adaptation policy or by tier exhaustion.
	TierChanged bool
	NextPhase   Phase
}

// NewEngine validates the question bank against the session policy and
// returns a ready engine in the intake phase.
func NewEngine(b *bank.Bank, cfg Config, sessionID string) (*Engine, error) {
	for _, tier := range bank.AllDifficulties() {
		if _, err := b.QuestionsFor(tier); err != nil {
			return nil, &bank.ConfigurationError{Reason: "tier " + string(tier) + " has no questions"}
		}
		if cfg.TimeLimits[tier] <= 0 {
			return nil, &bank.ConfigurationError{Reason: "no time limit configured for tier " + string(tier)}
		}
	}
	if cfg.FreeTextLimit <= 0 {
		return nil, &bank.ConfigurationError{Reason: "no free-text time limit configured"}
	}
	return &Engine{bank: b, cfg: cfg, state: NewState(sessionID)}, nil
}

// State exposes the session record for rendering and persistence.
func (e *Engine) State() *State { return e.state }

// Config returns the session policy the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Intake extracts skills from the resume and job description and records the
// match percentage. Allowed only before the interview starts; calling it
// again overwrites the previous extraction.
func (e *Engine) Intake(resumeText, jdText string, vocabulary []skills.Tag) error {
	if e.state.Phase != PhaseIntake {
		return invalidTransition(e.state.Phase, "run intake")
	}
	e.state.ResumeSkills = skills.Extract(resumeText, vocabulary)
	e.state.JDSkills = skills.Extract(jdText, vocabulary)
	e.state.SkillMatchPct = skills.MatchPercent(e.state.ResumeSkills, e.state.JDSkills)
	return nil
}

// Start moves the session into the interview phase and arms the timer for the
// first question.
func (e *Engine) Start(now time.Time) error {
	if e.state.Phase != PhaseIntake {
		return invalidTransition(e.state.Phase, "start interview")
	}
	e.state.Phase = PhaseInterview
	e.state.StartedAt = now
	e.state.QuestionStart = now
	return nil
}

// RestartTimer rearms the current question's clock. The TUI calls this when
// the feedback overlay is dismissed so time spent reading feedback does not
// count against the next question. Ignored outside the interview phase.
func (e *Engine) RestartTimer(now time.Time) {
	if e.state.Phase == PhaseInterview {
		e.state.QuestionStart = now
	}
}

// Abort ends the session before strikes or the question list would finish it.
// The session lands in the terminated phase.
func (e *Engine) Abort(now time.Time) error {
	if e.state.Phase != PhaseInterview {
		return invalidTransition(e.state.Phase, "abort interview")
	}
	e.state.Phase = PhaseTerminated
	e.state.FinishedAt = now
	return nil
}

// Current returns the question the session is waiting on.
func (e *Engine) Current() (bank.Question, error) {
	if e.state.Phase != PhaseInterview {
		return bank.Question{}, invalidTransition(e.state.Phase, "read current question")
	}
	qs, err := e.bank.QuestionsFor(e.state.Difficulty)
	if err != nil {
		return bank.Question{}, err
	}
	return qs[e.state.QuestionIndex], nil
}

// Remaining returns the time left on the current question.
func (e *Engine) Remaining(now time.Time) (time.Duration, error) {
	q, err := e.Current()
	if err != nil {
		return 0, err
	}
	return Remaining(e.state.QuestionStart, now, e.cfg.LimitFor(q)), nil
}

// Tick checks the current question's deadline. When the limit has elapsed the
// question resolves as a timeout (incorrect, full limit logged) and the
// session advances. A tick that arrives after the session has left the
// interview phase is ignored, so a stale tick racing a submission is a no-op.
func (e *Engine) Tick(now time.Time) (*Resolution, error) {
	if e.state.Phase != PhaseInterview {
		return nil, nil
	}
	q, err := e.Current()
	if err != nil {
		return nil, err
	}
	if Remaining(e.state.QuestionStart, now, e.cfg.LimitFor(q)) > 0 {
		return nil, nil
	}
	res := &Resolution{
		Question: q,
		TimedOut: true,
		Elapsed:  e.cfg.LimitFor(q),
	}
	e.resolve(res, now)
	return res, nil
}

// SubmitChoice resolves the current multiple-choice question with the
// selected option text.
func (e *Engine) SubmitChoice(selected string, now time.Time) (*Resolution, error) {
	q, err := e.pending(now, bank.FormatMultipleChoice, "submit a choice")
	if err != nil {
		return nil, err
	}
	points := e.cfg.ScoreMultipleChoice(selected, q.Answer)
	res := &Resolution{
		Question: q,
		Answer:   selected,
		Correct:  points > 0,
		Points:   points,
		Elapsed:  now.Sub(e.state.QuestionStart),
	}
	e.resolve(res, now)
	return res, nil
}

// SubmitFreeText resolves the current free-text question. The answer is
// graded on a 0-100 quality scale; qualities at or above the pass mark count
// as correct and earn a proportional share of the flat reward.
func (e *Engine) SubmitFreeText(answer string, now time.Time) (*Resolution, error) {
	q, err := e.pending(now, bank.FormatFreeText, "submit free text")
	if err != nil {
		return nil, err
	}
	elapsed := now.Sub(e.state.QuestionStart)
	quality := e.cfg.ScoreFreeText(answer, q.Keyword, elapsed)
	res := &Resolution{
		Question: q,
		Answer:   answer,
		Correct:  quality >= e.cfg.FreeTextPassMark,
		Quality:  quality,
		Elapsed:  elapsed,
	}
	if res.Correct {
		res.Points = e.cfg.FlatReward * quality / 100
	}
	e.resolve(res, now)
	return res, nil
}

// pending guards a submission: the session must be mid-interview, the current
// question must have the expected format, and the deadline must not have
// passed. A submission after the deadline resolves as a timeout instead.
func (e *Engine) pending(now time.Time, format bank.Format, action string) (bank.Question, error) {
	if e.state.Phase != PhaseInterview {
		return bank.Question{}, invalidTransition(e.state.Phase, action)
	}
	q, err := e.Current()
	if err != nil {
		return bank.Question{}, err
	}
	if q.Format != format {
		return bank.Question{}, invalidTransition(e.state.Phase, action+" on a "+string(q.Format)+" question")
	}
	if Remaining(e.state.QuestionStart, now, e.cfg.LimitFor(q)) <= 0 {
		return bank.Question{}, invalidTransition(e.state.Phase, action+" after the deadline")
	}
	return q, nil
}

// resolve applies one outcome to the session: it logs the response time,
// updates score and strikes, applies the difficulty policy, and advances the
// cursor or finishes the session. Strike termination wins over everything
// else, including remaining questions.
func (e *Engine) resolve(res *Resolution, now time.Time) {
	s := e.state
	s.ResponseTimes = append(s.ResponseTimes, res.Elapsed)
	s.TotalAnswered++

	if res.Correct {
		s.Score += res.Points
		s.TotalCorrect++
		s.SkillScore[res.Question.Skill]++
	} else {
		s.Strikes++
	}

	prev := s.Difficulty
	s.Difficulty = NextDifficulty(prev, res.Correct)

	if s.Strikes >= e.cfg.MaxStrikes {
		s.Phase = PhaseTerminated
		s.FinishedAt = now
		res.TierChanged = s.Difficulty != prev
		res.NextPhase = s.Phase
		return
	}

	if s.Difficulty != prev {
		s.QuestionIndex = 0
	} else {
		s.QuestionIndex++
	}
	if s.QuestionIndex >= e.bank.TierSize(s.Difficulty) {
		if next, ok := tierAbove(s.Difficulty); ok {
			s.Difficulty = next
			s.QuestionIndex = 0
		} else {
			s.Phase = PhaseReport
			s.FinishedAt = now
		}
	}

	res.TierChanged = s.Difficulty != prev
	res.NextPhase = s.Phase
	if s.Phase == PhaseInterview {
		s.QuestionStart = now
	}
}
