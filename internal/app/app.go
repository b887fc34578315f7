package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adixit/intervue/internal/bank"
	"github.com/adixit/intervue/internal/coach"
	"github.com/adixit/intervue/internal/interview"
	"github.com/adixit/intervue/internal/router"
	"github.com/adixit/intervue/internal/screen"
	"github.com/adixit/intervue/internal/screens/home"
	"github.com/adixit/intervue/internal/screens/welcome"
	"github.com/adixit/intervue/internal/selfupdate"
	"github.com/adixit/intervue/internal/skills"
	"github.com/adixit/intervue/internal/store"
	"github.com/adixit/intervue/internal/ui/layout"
)

// Options holds the dependencies the TUI runs on. Bank, EventRepo, and
// ReportRepo are required for interviews; Coach and Checker are optional.
type Options struct {
	Bank       *bank.Bank
	Config     interview.Config
	Vocabulary []skills.Tag
	EventRepo  store.EventRepo
	ReportRepo store.ReportRepo
	Coach      *coach.Service
	Checker    *selfupdate.Checker
	Version    string
	LLMReady   bool

	// ResumeText and JDText prefill the intake form when set.
	ResumeText string
	JDText     string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Bank, opts.Config, opts.Vocabulary, opts.EventRepo,
			opts.ReportRepo, opts.Coach, opts.Checker, opts.Version, opts.LLMReady,
			opts.ResumeText, opts.JDText)
	}
	return AppModel{
		router: router.New(welcome.New(homeFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with their own Esc behavior (quit confirm) get the key;
			// everything else pops back.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var score, strikes, maxStrikes int
	if sp, ok := active.(screen.StatsProvider); ok {
		score, strikes, maxStrikes = sp.Stats()
	}

	header := layout.RenderHeader(title, score, strikes, maxStrikes, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
