package report

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adixit/intervue/internal/readiness"
	"github.com/adixit/intervue/internal/router"
	"github.com/adixit/intervue/internal/screen"
	"github.com/adixit/intervue/internal/skills"
	"github.com/adixit/intervue/internal/ui/components"
	"github.com/adixit/intervue/internal/ui/layout"
	"github.com/adixit/intervue/internal/ui/theme"
)

// ReportScreen displays the readiness report of a finished session.
type ReportScreen struct {
	report *readiness.Report
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a new ReportScreen.
func New(report *readiness.Report) *ReportScreen {
	return &ReportScreen{report: report}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Readiness Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	rep := s.report
	if rep == nil {
		return ""
	}

	var b strings.Builder

	// Verdict banner.
	if rep.Verdict == readiness.VerdictReady {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Ready for interviews"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Needs more preparation"))
	}
	b.WriteString("\n")
	if rep.Terminated {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Interview ended early"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Stats line.
	statsLine := fmt.Sprintf("Score: %d        Skill match: %d%%        Confidence: %s",
		rep.Score, rep.MatchPct, rep.Confidence)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Average response: %.1fs        Strikes: %d", rep.AvgTime.Seconds(), rep.Strikes)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Skill scoreboard.
	if len(rep.SkillScore) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skill scoreboard")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		tags := make([]skills.Tag, 0, len(rep.SkillScore))
		maxCount := 0
		for tag, count := range rep.SkillScore {
			tags = append(tags, tag)
			if count > maxCount {
				maxCount = count
			}
		}
		if maxCount == 0 {
			maxCount = 1
		}
		sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
		for _, tag := range tags {
			count := rep.SkillScore[tag]
			bar := components.NewProgressBar(
				fmt.Sprintf("%-16s %d", tag, count),
				float64(count)/float64(maxCount),
				false,
				min(width-8, 60))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Improvement plan.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Improvement plan")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, item := range rep.Plan {
		wrapped := lipgloss.NewStyle().
			Width(min(width-8, 60)).
			Foreground(theme.Text).
			Render("• " + item)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, wrapped))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
