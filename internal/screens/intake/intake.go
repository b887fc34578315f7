package intake

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/adixit/intervue/internal/bank"
	"github.com/adixit/intervue/internal/coach"
	engine "github.com/adixit/intervue/internal/interview"
	"github.com/adixit/intervue/internal/router"
	"github.com/adixit/intervue/internal/screen"
	interviewscreen "github.com/adixit/intervue/internal/screens/interview"
	"github.com/adixit/intervue/internal/skills"
	"github.com/adixit/intervue/internal/store"
	"github.com/adixit/intervue/internal/ui/components"
	"github.com/adixit/intervue/internal/ui/layout"
	"github.com/adixit/intervue/internal/ui/theme"
)

const (
	fieldResume = iota
	fieldJD
)

// IntakeScreen collects the resume and job description, runs skill
// extraction, and hands a prepared engine to the interview screen.
type IntakeScreen struct {
	engine     *engine.Engine
	eventRepo  store.EventRepo
	reportRepo store.ReportRepo
	coach      *coach.Service
	vocabulary []skills.Tag

	resume   components.TextInput
	jd       components.TextInput
	focused  int
	analyzed bool
	errMsg   string
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// New creates an IntakeScreen and the engine behind it. coachSvc may be nil;
// resumeText and jdText prefill the form when non-empty (--resume/--jd files).
func New(b *bank.Bank, cfg engine.Config, vocabulary []skills.Tag, eventRepo store.EventRepo, reportRepo store.ReportRepo, coachSvc *coach.Service, resumeText, jdText string) *IntakeScreen {
	s := &IntakeScreen{
		eventRepo:  eventRepo,
		reportRepo: reportRepo,
		coach:      coachSvc,
		vocabulary: vocabulary,
		resume:     components.NewTextInput("Paste your resume text...", false, 0),
		jd:         components.NewTextInput("Paste the job description...", false, 0),
	}
	s.resume.Model.SetValue(resumeText)
	s.jd.Model.SetValue(jdText)

	eng, err := engine.NewEngine(b, cfg, uuid.New().String())
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.engine = eng
	return s
}

func (s *IntakeScreen) Init() tea.Cmd {
	s.jd.Model.Blur()
	return s.resume.Init()
}

func (s *IntakeScreen) Title() string {
	return "Intake"
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	if s.analyzed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start interview"},
			{Key: "E", Description: "Edit"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Analyze"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forwardToInput(msg)
	}

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.analyzed {
		switch kmsg.String() {
		case "enter":
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: interviewscreen.New(s.engine, s.eventRepo, s.reportRepo, s.coach),
				}
			}
		case "e", "E":
			// Back to editing; the next analyze overwrites the extraction.
			s.analyzed = false
			return s, s.focusField(fieldResume)
		}
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.focusField(fieldJD)
	case "shift+tab", "up":
		return s, s.focusField(fieldResume)
	case "enter":
		if s.focused == fieldResume {
			return s, s.focusField(fieldJD)
		}
		return s.analyze()
	}

	return s.forwardToInput(msg)
}

func (s *IntakeScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if s.focused == fieldResume {
		s.resume, cmd = s.resume.Update(msg)
	} else {
		s.jd, cmd = s.jd.Update(msg)
	}
	return s, cmd
}

func (s *IntakeScreen) focusField(field int) tea.Cmd {
	s.focused = field
	if field == fieldResume {
		s.jd.Model.Blur()
		return s.resume.Init()
	}
	s.resume.Model.Blur()
	return s.jd.Init()
}

// analyze runs skill extraction on both texts.
func (s *IntakeScreen) analyze() (screen.Screen, tea.Cmd) {
	if s.engine == nil {
		return s, nil
	}
	if strings.TrimSpace(s.resume.Value()) == "" || strings.TrimSpace(s.jd.Value()) == "" {
		return s, nil
	}
	if err := s.engine.Intake(s.resume.Value(), s.jd.Value(), s.vocabulary); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.analyzed = true
	return s, nil
}

func (s *IntakeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if s.analyzed {
		return s.renderExtraction(width)
	}
	return s.renderForm(width)
}

func (s *IntakeScreen) renderForm(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Tell us about the role"))
	b.WriteString("\n\n")

	b.WriteString(s.renderField("Resume", s.resume, s.focused == fieldResume, width))
	b.WriteString("\n")
	b.WriteString(s.renderField("Job description", s.jd, s.focused == fieldJD, width))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Skills are matched against the interview question bank."))

	return b.String()
}

func (s *IntakeScreen) renderField(label string, input components.TextInput, focused bool, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}

	cw := components.ContentWidth(width)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1)
	if focused {
		box = box.BorderForeground(theme.Primary)
	}

	content := labelStyle.Render(label) + "\n" + box.Render(input.View())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content) + "\n"
}

func (s *IntakeScreen) renderExtraction(width int) string {
	st := s.engine.State()

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Skill extraction"))
	b.WriteString("\n\n")

	matchStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	if st.SkillMatchPct >= 50 {
		matchStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	}
	matchCard := components.Card(
		lipgloss.NewStyle().Foreground(theme.Text).Render("Match with job requirements: ")+
			matchStyle.Render(fmt.Sprintf("%d%%", st.SkillMatchPct)),
		components.ContentWidth(width))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, matchCard))
	b.WriteString("\n\n")

	b.WriteString(renderSkillLine("Resume skills", st.ResumeSkills, width))
	b.WriteString(renderSkillLine("Job requires", st.JDSkills, width))

	if missing := st.JDSkills.Minus(st.ResumeSkills); len(missing) > 0 {
		b.WriteString(renderTagLine("Missing", missing, theme.Error, width))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to begin the interview"))

	return b.String()
}

func renderSkillLine(label string, set skills.Set, width int) string {
	return renderTagLine(label, set.Sorted(), theme.Text, width)
}

func renderTagLine(label string, tags []skills.Tag, fg color.Color, width int) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = string(tag)
	}
	joined := strings.Join(parts, ", ")
	if joined == "" {
		joined = "none detected"
	}

	line := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-16s", label)) +
		lipgloss.NewStyle().Foreground(fg).Render(joined)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line) + "\n"
}
