package interview

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/adixit/intervue/internal/bank"
	engine "github.com/adixit/intervue/internal/interview"
	"github.com/adixit/intervue/internal/ui/components"
	"github.com/adixit/intervue/internal/ui/theme"
)

// renderQuestionView renders the active question display.
func (s *InterviewScreen) renderQuestionView(width, height int) string {
	q, err := s.engine.Current()
	if err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing question...")
	}
	st := s.engine.State()

	var b strings.Builder

	// Info line: tier on the left, progress and countdown on the right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Tier: %s", st.Difficulty.DisplayName()))

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if s.remaining <= 5*time.Second {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  %s %d  ",
			st.TotalAnswered+1,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✔"),
			st.TotalCorrect,
		)) + timerStyle.Render(formatCountdown(s.remaining))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n")

	// Countdown bar: drains as the time limit approaches.
	if limit := s.engine.Config().LimitFor(q); limit > 0 {
		bar := components.NewProgressBar("", float64(s.remaining)/float64(limit), false, min(width-8, 60))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	}
	b.WriteString("\n\n")

	// Question text (centered), with the probed skill underneath.
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(string(q.Skill)))
	b.WriteString("\n\n")

	// Input area.
	if s.mcActive {
		b.WriteString(s.renderMultipleChoice(q, width))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}

	return b.String()
}

// renderMultipleChoice renders the options for the current question.
func (s *InterviewScreen) renderMultipleChoice(q bank.Question, width int) string {
	var b strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter")
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the overlay shown after each resolved question.
func (s *InterviewScreen) renderFeedback(width, height int) string {
	res := s.lastRes
	if res == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	centered := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	switch {
	case res.TimedOut:
		centered(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Time's up")
	case res.Correct:
		centered(lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
			fmt.Sprintf("Correct!  +%d pts", res.Points))
	default:
		centered(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Not quite")
	}

	if res.Question.Format == bank.FormatFreeText {
		if !res.TimedOut {
			centered(lipgloss.NewStyle().Foreground(theme.Text),
				fmt.Sprintf("Answer quality: %d/100", res.Quality))
		}
		if !res.Correct && res.Question.Keyword != "" {
			centered(lipgloss.NewStyle().Foreground(theme.TextDim),
				fmt.Sprintf("Expected to mention: %s", res.Question.Keyword))
		}
	} else if !res.Correct {
		centered(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Correct answer: %s", res.Question.Answer))
	}

	b.WriteString("\n")

	// Phase transition notices.
	switch res.NextPhase {
	case engine.PhaseTerminated:
		centered(lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
			fmt.Sprintf("Interview ended: %d incorrect answers", s.engine.Config().MaxStrikes))
	case engine.PhaseReport:
		centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), "Interview complete!")
	default:
		if res.TierChanged {
			centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
				fmt.Sprintf("Difficulty moved to %s", s.engine.State().Difficulty.DisplayName()))
		}
	}

	// Coach feedback for free-text answers.
	if s.awaitingFeedback {
		b.WriteString("\n")
		centered(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true), "Generating feedback...")
	} else if s.feedback != nil {
		b.WriteString("\n")
		b.WriteString(renderCoachFeedback(s.feedback.Assessment, s.feedback.Strengths, s.feedback.Gaps, s.feedback.ModelTip, width))
	}

	b.WriteString("\n")
	centered(lipgloss.NewStyle().Foreground(theme.TextDim), "Press any key to continue...")

	return b.String()
}

// renderCoachFeedback renders the LLM assessment card.
func renderCoachFeedback(assessment string, strengths, gaps []string, tip string, width int) string {
	cw := min(width-8, 70)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Coach"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(assessment))
	b.WriteString("\n")
	for _, st := range strengths {
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Success).Render("+ " + st))
		b.WriteString("\n")
	}
	for _, g := range gaps {
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Error).Render("- " + g))
		b.WriteString("\n")
	}
	if tip != "" {
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Italic(true).Render("Tip: " + tip))
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End interview early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers so far will still be scored."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end interview"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

// formatCountdown renders a duration as m:ss.
func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
