package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 16
)

// Layout breakpoints for adaptive rendering.
const (
	// CompactWidth triggers compact mode for the footer and status bar.
	CompactWidth = 60
	// SkyCollapseHeight hides the starfield band on short terminals.
	SkyCollapseHeight = 28
	// SkyHeight is the number of rows the starfield band occupies.
	SkyHeight = 5
)

// TruncateWithEllipsis truncates s to maxLen runes, appending "..." if truncated.
// If maxLen is less than 4, returns s truncated to maxLen runes without ellipsis.
func TruncateWithEllipsis(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}

// centerOverlay pads content so it sits in the middle of a width×height area.
func centerOverlay(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return content
	}
	leftPad := max((width-lipgloss.Width(content))/2, 0)
	topPad := max((height-lipgloss.Height(content))/2, 0)
	return lipgloss.NewStyle().
		PaddingLeft(leftPad).
		PaddingTop(topPad).
		Render(content)
}

// compositeOverlay renders the overlay box on top of the background. Both are
// split into lines and the background lines under the overlay are replaced,
// with the overlay centered in both directions.
func compositeOverlay(bg, overlay string, width, height int) string {
	if width > 0 {
		overlay = lipgloss.PlaceHorizontal(width, lipgloss.Center, overlay)
	}
	bgLines := strings.Split(bg, "\n")
	olLines := strings.Split(overlay, "\n")
	if height <= 0 {
		height = max(len(bgLines), len(olLines))
	}

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	topOffset := max((height-len(olLines))/2, 0)
	for i, olLine := range olLines {
		row := topOffset + i
		if row < len(bgLines) {
			bgLines[row] = olLine
		}
	}
	return strings.Join(bgLines[:height], "\n")
}
