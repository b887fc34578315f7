package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/adixit/intervue/internal/router"
	"github.com/adixit/intervue/internal/screen"
	"github.com/adixit/intervue/internal/screens/report"
	"github.com/adixit/intervue/internal/store"
	"github.com/adixit/intervue/internal/ui/layout"
	"github.com/adixit/intervue/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummary
	Err      error
}

// HistoryScreen displays past interview sessions.
type HistoryScreen struct {
	eventRepo  store.EventRepo
	reportRepo store.ReportRepo
	sessions   []store.SessionSummary
	selected   int
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo, reportRepo store.ReportRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo:  eventRepo,
		reportRepo: reportRepo,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eventRepo.ListSessions(context.Background(), 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Report"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.openReport()
		}
	}
	return s, nil
}

// openReport pushes the saved readiness report for the selected session.
// Sessions without a report (still running, or pruned) are a no-op.
func (s *HistoryScreen) openReport() tea.Cmd {
	if s.selected < 0 || s.selected >= len(s.sessions) {
		return nil
	}
	sessionID := s.sessions[s.selected].SessionID
	return func() tea.Msg {
		rep, err := s.reportRepo.BySession(context.Background(), sessionID)
		if err != nil || rep == nil {
			return nil
		}
		return router.PushScreenMsg{Screen: report.New(rep)}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No interviews yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Format("Jan 02, 2006")

		var accuracy float64
		if sess.QuestionsServed > 0 {
			accuracy = float64(sess.CorrectAnswers) / float64(sess.QuestionsServed) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-11s  %d pts  %d questions  %.0f%% accuracy  match %d%%",
			prefix, dateStr, actionLabel(sess.Action), sess.Score,
			sess.QuestionsServed, accuracy, sess.SkillMatchPct)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// actionLabel maps the stored session action to a short status word.
func actionLabel(action string) string {
	switch action {
	case "terminated":
		return "ended early"
	case "abandoned":
		return "abandoned"
	case "completed":
		return "completed"
	default:
		return "in progress"
	}
}
