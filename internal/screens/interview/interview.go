package interview

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/adixit/intervue/internal/bank"
	"github.com/adixit/intervue/internal/coach"
	engine "github.com/adixit/intervue/internal/interview"
	"github.com/adixit/intervue/internal/readiness"
	"github.com/adixit/intervue/internal/router"
	"github.com/adixit/intervue/internal/screen"
	"github.com/adixit/intervue/internal/screens/report"
	"github.com/adixit/intervue/internal/store"
	"github.com/adixit/intervue/internal/ui/components"
	"github.com/adixit/intervue/internal/ui/layout"
)

// InterviewScreen implements screen.Screen for the live interview.
type InterviewScreen struct {
	engine     *engine.Engine
	eventRepo  store.EventRepo
	reportRepo store.ReportRepo
	coach      *coach.Service

	input      components.TextInput
	mcActive   bool // true when showing multiple choice
	mcSelected int
	remaining  time.Duration

	showingFeedback    bool
	showingQuitConfirm bool
	awaitingFeedback   bool
	lastRes            *engine.Resolution
	feedback           *coach.Feedback
	aborted            bool
	ended              bool
	errMsg             string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.EscHandler = (*InterviewScreen)(nil)
var _ screen.StatsProvider = (*InterviewScreen)(nil)

// New creates an InterviewScreen around an engine that has completed intake.
// coachSvc may be nil, in which case no answer feedback is generated.
func New(eng *engine.Engine, eventRepo store.EventRepo, reportRepo store.ReportRepo, coachSvc *coach.Service) *InterviewScreen {
	return &InterviewScreen{
		engine:     eng,
		eventRepo:  eventRepo,
		reportRepo: reportRepo,
		coach:      coachSvc,
		input:      components.NewTextInput("Type your answer...", false, 240),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	now := time.Now()
	if err := s.engine.Start(now); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if rem, err := s.engine.Remaining(now); err == nil {
		s.remaining = rem
	}
	s.setupInput()

	st := s.engine.State()
	_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:     st.SessionID,
		Action:        "start",
		Phase:         string(st.Phase),
		SkillMatchPct: st.SkillMatchPct,
	})

	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *InterviewScreen) Title() string {
	return "Interview"
}

func (s *InterviewScreen) HandlesEsc() bool {
	return true
}

// Stats surfaces the live score and strikes for the header.
func (s *InterviewScreen) Stats() (int, int, int) {
	st := s.engine.State()
	return st.Score, st.Strikes, s.engine.Config().MaxStrikes
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End interview"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.mcActive {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *InterviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.showingFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case interviewEndMsg:
		return s.handleEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to the text input while a free-text question is live.
	if s.answering() && !s.mcActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// answering reports whether a question is live and accepting input.
func (s *InterviewScreen) answering() bool {
	return !s.ended && !s.showingFeedback && !s.showingQuitConfirm && s.errMsg == ""
}

func (s *InterviewScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.ended || s.errMsg != "" {
		return s, nil
	}

	if s.showingFeedback {
		// The overlay freezes the interview clock; the tick only polls for
		// coach feedback arriving.
		if s.awaitingFeedback && s.coach != nil {
			if fb, ok := s.coach.ConsumeFeedback(); ok {
				s.feedback = fb
				s.awaitingFeedback = false
			}
		}
		return s, tickCmd()
	}
	if s.showingQuitConfirm {
		return s, tickCmd()
	}

	now := time.Now()
	res, err := s.engine.Tick(now)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if res != nil {
		s.recordAnswer(res)
		s.showFeedback(res)
		return s, tickCmd()
	}

	if rem, err := s.engine.Remaining(now); err == nil {
		s.remaining = rem
	}
	return s, tickCmd()
}

func (s *InterviewScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.awaitingFeedback = false
	s.feedback = nil
	s.lastRes = nil

	if s.engine.State().Phase.Terminal() {
		return s, func() tea.Msg { return interviewEndMsg{} }
	}

	now := time.Now()
	s.engine.RestartTimer(now)
	if rem, err := s.engine.Remaining(now); err == nil {
		s.remaining = rem
	}
	s.setupInput()
	return s, s.input.Init()
}

func (s *InterviewScreen) handleEnd() (screen.Screen, tea.Cmd) {
	s.ended = true
	st := s.engine.State()

	action := "completed"
	switch {
	case s.aborted:
		action = "abandoned"
	case st.Phase == engine.PhaseTerminated:
		action = "terminated"
	}

	ctx := context.Background()
	_ = s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       st.SessionID,
		Action:          action,
		Phase:           string(st.Phase),
		Score:           st.Score,
		Strikes:         st.Strikes,
		QuestionsServed: st.TotalAnswered,
		CorrectAnswers:  st.TotalCorrect,
		SkillMatchPct:   st.SkillMatchPct,
		DurationSecs:    st.FinishedAt.Sub(st.StartedAt).Seconds(),
	})

	rep := readiness.Analyze(st, readiness.DefaultConfig())
	_ = s.reportRepo.Save(ctx, rep)

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: report.New(rep)}
	}
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.ended {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.aborted = true
			if err := s.engine.Abort(time.Now()); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s, func() tea.Msg { return interviewEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			s.engine.RestartTimer(time.Now())
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay — any key dismisses.
	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	// Multiple choice: number keys and arrows.
	if s.mcActive {
		q, err := s.engine.Current()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		switch key {
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(q.Options) {
				s.mcSelected = idx
				return s.submitAnswer()
			}
		case "up", "k":
			if s.mcSelected > 0 {
				s.mcSelected--
			}
			return s, nil
		case "down", "j":
			if s.mcSelected < len(q.Options)-1 {
				s.mcSelected++
			}
			return s, nil
		}
		return s, nil
	}

	// Forward to the text input.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer resolves the current question with the candidate's answer.
func (s *InterviewScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	now := time.Now()
	q, err := s.engine.Current()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	var res *engine.Resolution
	if s.mcActive {
		if s.mcSelected < 0 || s.mcSelected >= len(q.Options) {
			return s, nil
		}
		res, err = s.engine.SubmitChoice(q.Options[s.mcSelected], now)
	} else {
		answer := s.input.Value()
		if answer == "" {
			return s, nil
		}
		res, err = s.engine.SubmitFreeText(answer, now)
	}
	if err != nil {
		// A submission racing the deadline loses; the next tick resolves the
		// question as a timeout.
		var itErr *engine.InvalidTransitionError
		if errors.As(err, &itErr) {
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	s.recordAnswer(res)
	s.showFeedback(res)
	return s, nil
}

// recordAnswer persists one resolved question.
func (s *InterviewScreen) recordAnswer(res *engine.Resolution) {
	expected := res.Question.Answer
	if res.Question.Format == bank.FormatFreeText {
		expected = res.Question.Keyword
	}
	_ = s.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		SessionID:       s.engine.State().SessionID,
		Skill:           string(res.Question.Skill),
		Difficulty:      string(res.Question.Difficulty),
		QuestionText:    res.Question.Text,
		AnswerFormat:    string(res.Question.Format),
		ExpectedAnswer:  expected,
		CandidateAnswer: res.Answer,
		Correct:         res.Correct,
		TimedOut:        res.TimedOut,
		Points:          res.Points,
		Quality:         res.Quality,
		TimeMs:          res.Elapsed.Milliseconds(),
	})
}

// showFeedback raises the overlay and, for answered free-text questions,
// kicks off async coach feedback.
func (s *InterviewScreen) showFeedback(res *engine.Resolution) {
	s.lastRes = res
	s.showingFeedback = true
	s.feedback = nil
	s.awaitingFeedback = false

	if s.coach != nil && res.Question.Format == bank.FormatFreeText && !res.TimedOut {
		s.awaitingFeedback = true
		s.coach.RequestFeedback(context.Background(), coach.FeedbackInput{
			QuestionText: res.Question.Text,
			Skill:        res.Question.Skill,
			Keyword:      res.Question.Keyword,
			Answer:       res.Answer,
			Quality:      res.Quality,
			ElapsedSecs:  res.Elapsed.Seconds(),
		})
	}
}

// setupInput prepares the input widget for the current question's format.
func (s *InterviewScreen) setupInput() {
	q, err := s.engine.Current()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	if q.Format == bank.FormatMultipleChoice {
		s.mcActive = true
		s.mcSelected = 0
	} else {
		s.mcActive = false
		s.input = components.NewTextInput("Type your answer...", false, 240)
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
