package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleLogoOrbit = lipgloss.NewStyle().Foreground(colorNebula)
	styleLogoCore  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

// Logo returns the styled single-line AstroStay mark for the status bar.
// Background is inherited from the parent status bar container.
func Logo() string {
	return styleLogoOrbit.Render("◌") + styleLogoCore.Render(" ASTROSTAY")
}

// LogoPlain returns the unstyled logo text.
func LogoPlain() string {
	return "◌ ASTROSTAY"
}
