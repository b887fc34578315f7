package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adixit/intervue/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const panelTitleFull = ` ██╗███╗   ██╗████████╗███████╗██████╗ ██╗   ██╗██╗   ██╗███████╗
 ██║████╗  ██║╚══██╔══╝██╔════╝██╔══██╗██║   ██║██║   ██║██╔════╝
 ██║██╔██╗ ██║   ██║   █████╗  ██████╔╝██║   ██║██║   ██║█████╗
 ██║██║╚██╗██║   ██║   ██╔══╝  ██╔══██╗╚██╗ ██╔╝██║   ██║██╔══╝
 ██║██║ ╚████║   ██║   ███████╗██║  ██║ ╚████╔╝ ╚██████╔╝███████╗
 ╚═╝╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚═╝  ╚═╝  ╚═══╝   ╚═════╝ ╚══════╝`

const panelTitleCompact = "I · N · T · E · R · V · U · E"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 68 {
		w = 68
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(panelTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(panelTitleFull))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(sessions, bestScore int, readiness string, cw int, compact bool) string {
	sessionStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			sessionStyle.Render(fmt.Sprintf("▣%d", sessions)),
			scoreStyle.Render(fmt.Sprintf("◆%d", bestScore)),
			readinessText(readiness, true),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			sessionStyle.Render(fmt.Sprintf("▣ %d INTERVIEWS", sessions)),
			scoreStyle.Render(fmt.Sprintf("◆ BEST %d", bestScore)),
			readinessText(readiness, false),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func readinessText(readiness string, compact bool) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch readiness {
	case "ready":
		style := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		if compact {
			return style.Render("●R")
		}
		return style.Render("● READY")
	case "not_ready":
		style := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		if compact {
			return style.Render("●P")
		}
		return style.Render("● KEEP PRACTICING")
	default:
		if compact {
			return dim.Render("●?")
		}
		return dim.Render("● NOT ASSESSED")
	}
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderPanelMenu renders each menu item as a fixed-width button.
func renderPanelMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderPanelMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderPanelMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLLMBanner renders a note when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key for answer feedback (see intervue --help)")
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	text := fmt.Sprintf("New version %s available", latestVersion)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderPanelFrame wraps content in a double-border frame, centering
// vertically and horizontally within the given dimensions.
func renderPanelFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).   // account for border chars
		Height(height-2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
