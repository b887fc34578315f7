package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/adixit/intervue/internal/bank"
	"github.com/adixit/intervue/internal/coach"
	"github.com/adixit/intervue/internal/interview"
	"github.com/adixit/intervue/internal/router"
	"github.com/adixit/intervue/internal/screen"
	"github.com/adixit/intervue/internal/screens/history"
	"github.com/adixit/intervue/internal/screens/intake"
	"github.com/adixit/intervue/internal/screens/placeholder"
	"github.com/adixit/intervue/internal/selfupdate"
	"github.com/adixit/intervue/internal/skills"
	"github.com/adixit/intervue/internal/store"
	"github.com/adixit/intervue/internal/ui/components"
)

// updateCheckedMsg carries the result of the background release check.
type updateCheckedMsg struct {
	LatestVersion string
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	menuLabels    []string
	sessionCount  int
	bestScore     int
	readiness     string
	llmReady      bool
	checker       *selfupdate.Checker
	version       string
	latestVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(questionBank *bank.Bank, cfg interview.Config, vocabulary []skills.Tag, eventRepo store.EventRepo, reportRepo store.ReportRepo, coachSvc *coach.Service, checker *selfupdate.Checker, version string, llmReady bool, resumeText, jdText string) *HomeScreen {
	ctx := context.Background()

	// Load past sessions for the stats bar.
	var sessionCount, bestScore int
	if eventRepo != nil {
		if sessions, err := eventRepo.ListSessions(ctx, 0); err == nil {
			sessionCount = len(sessions)
			for _, s := range sessions {
				if s.Score > bestScore {
					bestScore = s.Score
				}
			}
		}
	}

	// Latest verdict, if any session has finished.
	readinessState := ""
	if reportRepo != nil {
		if rep, err := reportRepo.Latest(ctx); err == nil && rep != nil {
			readinessState = string(rep.Verdict)
		}
	}

	menuLabels := []string{"START INTERVIEW", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if questionBank == nil || eventRepo == nil || reportRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Start Interview")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: intake.New(questionBank, cfg, vocabulary, eventRepo, reportRepo,
						coachSvc, resumeText, jdText),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if eventRepo == nil || reportRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo, reportRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		menuLabels:   menuLabels,
		sessionCount: sessionCount,
		bestScore:    bestScore,
		readiness:    readinessState,
		llmReady:     llmReady,
		checker:      checker,
		version:      version,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.checker == nil {
		return nil
	}
	checker, version := h.checker, h.version
	return func() tea.Msg {
		res, err := checker.Check(context.Background(), &selfupdate.CheckInput{Version: version})
		if err != nil || !res.UpdateAvailable {
			return nil
		}
		return updateCheckedMsg{LatestVersion: res.LatestVersion}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(updateCheckedMsg); ok {
		h.latestVersion = m.LatestVersion
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		h.sessionCount, h.bestScore, h.readiness, cw, compact))

	// 3. Menu
	if compact {
		sections = append(sections, renderPanelMenuCompact(
			h.menuLabels, h.menu.Selected, cw, nil))
	} else {
		sections = append(sections, renderPanelMenu(
			h.menuLabels, h.menu.Selected, cw, nil))
	}

	// 4. Notices
	if !h.llmReady {
		sections = append(sections, renderLLMBanner(cw))
	}
	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in the panel frame, centered in the full area
	return renderPanelFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
