package interview

import (
	"errors"
	"testing"
	"time"

	"github.com/adixit/intervue/internal/bank"
	"github.com/adixit/intervue/internal/skills"
)

var testClock = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	b, err := bank.New([]bank.Question{
		{Text: "E1", Format: bank.FormatMultipleChoice, Options: []string{"a", "b"}, Answer: "a", Skill: "python", Difficulty: bank.Easy},
		{Text: "E2", Format: bank.FormatMultipleChoice, Options: []string{"a", "b"}, Answer: "b", Skill: "sql", Difficulty: bank.Easy},
		{Text: "M1", Format: bank.FormatMultipleChoice, Options: []string{"a", "b"}, Answer: "a", Skill: "sql", Difficulty: bank.Medium},
		{Text: "M2", Format: bank.FormatMultipleChoice, Options: []string{"a", "b"}, Answer: "b", Skill: "communication", Difficulty: bank.Medium},
		{Text: "H1", Format: bank.FormatMultipleChoice, Options: []string{"a", "b"}, Answer: "a", Skill: "problem solving", Difficulty: bank.Hard},
		{Text: "H2", Format: bank.FormatFreeText, Keyword: "debug", Skill: "problem solving", Difficulty: bank.Hard},
	})
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}
	return b
}

func startedEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testBank(t), DefaultConfig(), "sess-1")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := e.Start(testClock); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return e
}

func TestNewEngine_RejectsMissingTimeLimit(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.TimeLimits, bank.Medium)

	_, err := NewEngine(testBank(t), cfg, "sess-1")
	var cfgErr *bank.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
}

func TestIntake_ComputesSkillMatch(t *testing.T) {
	e, err := NewEngine(testBank(t), DefaultConfig(), "sess-1")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	resume := "Built dashboards in Python and SQL."
	jd := "Looking for Python, SQL, Java and communication skills."
	if err := e.Intake(resume, jd, skills.DefaultVocabulary()); err != nil {
		t.Fatalf("Intake: %v", err)
	}

	s := e.State()
	if got := s.SkillMatchPct; got != 50 {
		t.Errorf("match = %d%%, want 50%%", got)
	}
	if !s.ResumeSkills["python"] || !s.ResumeSkills["sql"] {
		t.Errorf("resume skills = %v, missing python/sql", s.ResumeSkills)
	}
}

func TestIntake_RejectedAfterStart(t *testing.T) {
	e := startedEngine(t)

	err := e.Intake("resume", "jd", skills.DefaultVocabulary())
	var itErr *InvalidTransitionError
	if !errors.As(err, &itErr) {
		t.Fatalf("error = %v, want InvalidTransitionError", err)
	}
}

func TestStart_OnlyFromIntake(t *testing.T) {
	e := startedEngine(t)

	err := e.Start(testClock)
	var itErr *InvalidTransitionError
	if !errors.As(err, &itErr) {
		t.Fatalf("error = %v, want InvalidTransitionError", err)
	}
}

func TestSubmitChoice_CorrectAdvancesTier(t *testing.T) {
	e := startedEngine(t)

	res, err := e.SubmitChoice("a", testClock.Add(5*time.Second))
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if !res.Correct || res.Points != 20 {
		t.Errorf("resolution = correct:%v points:%d, want correct:true points:20", res.Correct, res.Points)
	}
	if !res.TierChanged {
		t.Error("TierChanged = false, want true")
	}

	s := e.State()
	if s.Difficulty != bank.Medium || s.QuestionIndex != 0 {
		t.Errorf("cursor = %s[%d], want medium[0]", s.Difficulty, s.QuestionIndex)
	}
	if s.Score != 20 || s.Strikes != 0 {
		t.Errorf("score/strikes = %d/%d, want 20/0", s.Score, s.Strikes)
	}
	if s.SkillScore["python"] != 1 {
		t.Errorf("skill score for python = %d, want 1", s.SkillScore["python"])
	}
}

func TestSubmitChoice_IncorrectKeepsTier(t *testing.T) {
	e := startedEngine(t)

	res, err := e.SubmitChoice("b", testClock.Add(5*time.Second))
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if res.Correct || res.Points != 0 {
		t.Errorf("resolution = correct:%v points:%d, want incorrect with 0 points", res.Correct, res.Points)
	}

	s := e.State()
	if s.Difficulty != bank.Easy || s.QuestionIndex != 1 {
		t.Errorf("cursor = %s[%d], want easy[1]", s.Difficulty, s.QuestionIndex)
	}
	if s.Strikes != 1 {
		t.Errorf("strikes = %d, want 1", s.Strikes)
	}
	if len(s.SkillScore) != 0 {
		t.Errorf("skill score = %v, want empty after incorrect answer", s.SkillScore)
	}
}

func TestTwoStrikes_TerminatesEvenWithQuestionsLeft(t *testing.T) {
	e := startedEngine(t)
	now := testClock

	now = now.Add(3 * time.Second)
	if _, err := e.SubmitChoice("b", now); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	now = now.Add(3 * time.Second)
	res, err := e.SubmitChoice("a", now) // E2's answer is b
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if res.NextPhase != PhaseTerminated {
		t.Errorf("next phase = %s, want terminated", res.NextPhase)
	}
	s := e.State()
	if s.Phase != PhaseTerminated {
		t.Errorf("phase = %s, want terminated", s.Phase)
	}
	if s.Strikes != 2 {
		t.Errorf("strikes = %d, want 2", s.Strikes)
	}

	// No further answers accepted.
	_, err = e.SubmitChoice("a", now.Add(time.Second))
	var itErr *InvalidTransitionError
	if !errors.As(err, &itErr) {
		t.Fatalf("post-termination submit error = %v, want InvalidTransitionError", err)
	}
}

func TestTick_TimeoutIsAStrikeAndLogsFullLimit(t *testing.T) {
	e := startedEngine(t)

	res, err := e.Tick(testClock.Add(30 * time.Second))
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if res == nil || !res.TimedOut {
		t.Fatalf("resolution = %+v, want timeout", res)
	}
	if res.Elapsed != 30*time.Second {
		t.Errorf("logged elapsed = %v, want the full 30s limit", res.Elapsed)
	}

	s := e.State()
	if s.Strikes != 1 {
		t.Errorf("strikes = %d, want 1", s.Strikes)
	}
	if s.Difficulty != bank.Easy || s.QuestionIndex != 1 {
		t.Errorf("cursor = %s[%d], want easy[1]", s.Difficulty, s.QuestionIndex)
	}
}

func TestTick_BeforeDeadlineIsNoOp(t *testing.T) {
	e := startedEngine(t)

	res, err := e.Tick(testClock.Add(29 * time.Second))
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if res != nil {
		t.Errorf("resolution = %+v, want nil before the deadline", res)
	}
	if e.State().Strikes != 0 {
		t.Errorf("strikes = %d, want 0", e.State().Strikes)
	}
}

func TestTick_IgnoredOutsideInterview(t *testing.T) {
	e, err := NewEngine(testBank(t), DefaultConfig(), "sess-1")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	// Before the interview starts a stale tick is dropped, not an error.
	res, err := e.Tick(testClock.Add(time.Hour))
	if err != nil || res != nil {
		t.Errorf("pre-start tick = (%+v, %v), want (nil, nil)", res, err)
	}
}

func TestSubmit_AfterDeadlineRejected(t *testing.T) {
	e := startedEngine(t)

	_, err := e.SubmitChoice("a", testClock.Add(31*time.Second))
	var itErr *InvalidTransitionError
	if !errors.As(err, &itErr) {
		t.Fatalf("error = %v, want InvalidTransitionError", err)
	}
}

func TestSubmitFreeText_OnMultipleChoiceRejected(t *testing.T) {
	e := startedEngine(t)

	_, err := e.SubmitFreeText("an essay", testClock.Add(time.Second))
	var itErr *InvalidTransitionError
	if !errors.As(err, &itErr) {
		t.Fatalf("error = %v, want InvalidTransitionError", err)
	}
}

func TestRecoveryAfterStrike_AdvancesToNextTier(t *testing.T) {
	e := startedEngine(t)
	now := testClock

	now = now.Add(3 * time.Second)
	if _, err := e.SubmitChoice("b", now); err != nil {
		t.Fatalf("miss E1: %v", err)
	}
	now = now.Add(3 * time.Second)
	res, err := e.SubmitChoice("b", now)
	if err != nil {
		t.Fatalf("answer E2: %v", err)
	}
	if !res.Correct {
		t.Fatal("E2 should have been correct")
	}
	s := e.State()
	if s.Difficulty != bank.Medium || s.QuestionIndex != 0 {
		t.Errorf("cursor = %s[%d], want medium[0]", s.Difficulty, s.QuestionIndex)
	}
}

func TestTierExhaustion_AdvancesToNextTier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxStrikes = 3
	e, err := NewEngine(testBank(t), cfg, "sess-1")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	now := testClock
	if err := e.Start(now); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Miss both easy questions: the tier runs out while the difficulty
	// policy keeps the session at easy, so the cursor rolls into medium.
	for i := 0; i < 2; i++ {
		now = now.Add(3 * time.Second)
		if _, err := e.SubmitChoice("wrong", now); err != nil {
			t.Fatalf("miss easy[%d]: %v", i, err)
		}
	}

	s := e.State()
	if s.Phase != PhaseInterview {
		t.Fatalf("phase = %s, want interview", s.Phase)
	}
	if s.Difficulty != bank.Medium || s.QuestionIndex != 0 {
		t.Errorf("cursor = %s[%d], want medium[0]", s.Difficulty, s.QuestionIndex)
	}
	if s.Strikes != 2 {
		t.Errorf("strikes = %d, want 2", s.Strikes)
	}
}

func TestFullRun_AllCorrectEndsInReport(t *testing.T) {
	e := startedEngine(t)
	now := testClock

	steps := []struct {
		text   string
		answer string
	}{
		{"E1", "a"},
		{"M1", "a"},
		{"H1", "a"},
	}
	for _, step := range steps {
		q, err := e.Current()
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		if q.Text != step.text {
			t.Fatalf("current question = %s, want %s", q.Text, step.text)
		}
		now = now.Add(4 * time.Second)
		if _, err := e.SubmitChoice(step.answer, now); err != nil {
			t.Fatalf("SubmitChoice(%s): %v", step.text, err)
		}
	}

	q, err := e.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if q.Text != "H2" || q.Format != bank.FormatFreeText {
		t.Fatalf("current question = %s (%s), want H2 free_text", q.Text, q.Format)
	}

	now = now.Add(8 * time.Second)
	res, err := e.SubmitFreeText("I would reproduce the failure and debug it with a bisect.", now)
	if err != nil {
		t.Fatalf("SubmitFreeText: %v", err)
	}
	if !res.Correct || res.Quality != 100 {
		t.Errorf("free-text resolution = correct:%v quality:%d, want correct at quality 100", res.Correct, res.Quality)
	}
	if res.NextPhase != PhaseReport {
		t.Errorf("next phase = %s, want report", res.NextPhase)
	}

	s := e.State()
	if s.Phase != PhaseReport {
		t.Errorf("phase = %s, want report", s.Phase)
	}
	if want := 20 + 20 + 20 + 20; s.Score != want {
		t.Errorf("score = %d, want %d", s.Score, want)
	}
	if s.SkillScore["problem solving"] != 2 {
		t.Errorf("problem solving score = %d, want 2", s.SkillScore["problem solving"])
	}
	if len(s.ResponseTimes) != 4 {
		t.Errorf("response log has %d entries, want 4", len(s.ResponseTimes))
	}
}

func TestRestartTimer_GrantsFullLimitAgain(t *testing.T) {
	e := startedEngine(t)

	// 25s in, the overlay comes down and the clock rearms.
	rearmed := testClock.Add(25 * time.Second)
	e.RestartTimer(rearmed)

	left, err := e.Remaining(rearmed.Add(5 * time.Second))
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if left != 25*time.Second {
		t.Errorf("remaining = %v, want 25s", left)
	}
}

func TestAbort_TerminatesAndRejectsFurtherWork(t *testing.T) {
	e := startedEngine(t)

	if err := e.Abort(testClock.Add(10 * time.Second)); err != nil {
		t.Fatalf("Abort: %v", err)
	}
	if e.State().Phase != PhaseTerminated {
		t.Errorf("phase = %s, want terminated", e.State().Phase)
	}

	err := e.Abort(testClock.Add(11 * time.Second))
	var itErr *InvalidTransitionError
	if !errors.As(err, &itErr) {
		t.Fatalf("second abort error = %v, want InvalidTransitionError", err)
	}
}

func TestTimerRearmsPerQuestion(t *testing.T) {
	e := startedEngine(t)
	now := testClock.Add(25 * time.Second)

	if _, err := e.SubmitChoice("a", now); err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}

	// New question at the medium tier gets a fresh 20s limit from now.
	left, err := e.Remaining(now.Add(5 * time.Second))
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if left != 15*time.Second {
		t.Errorf("remaining = %v, want 15s", left)
	}
}
