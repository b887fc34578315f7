package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/adixit/intervue/internal/ui/theme"
)

const bannerArt = `
 ██╗███╗   ██╗████████╗███████╗██████╗ ██╗   ██╗██╗   ██╗███████╗
 ██║████╗  ██║╚══██╔══╝██╔════╝██╔══██╗██║   ██║██║   ██║██╔════╝
 ██║██╔██╗ ██║   ██║   █████╗  ██████╔╝██║   ██║██║   ██║█████╗
 ██║██║╚██╗██║   ██║   ██╔══╝  ██╔══██╗╚██╗ ██╔╝██║   ██║██╔══╝
 ██║██║ ╚████║   ██║   ███████╗██║  ██║ ╚████╔╝ ╚██████╔╝███████╗
 ╚═╝╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚═╝  ╚═╝  ╚═══╝   ╚═════╝ ╚══════╝`

const bannerCompact = "I N T E R V U E"

// RenderBanner returns the INTERVUE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 68 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 68 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
