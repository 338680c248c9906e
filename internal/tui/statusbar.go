package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the persistent top bar: logo, selected destination and
// dates on the left, nights and the live total on the right.
type StatusBar struct {
	Width       int
	Destination string
	Dates       string
	Nights      string
	Total       string
}

// statusSegment is a styled right-side segment with a drop priority.
// Lower priority values are dropped first when the terminal is too narrow.
type statusSegment struct {
	text     string
	priority int
}

// View renders the status bar as a single line, dropping the dates and then
// the nights when the terminal is too narrow. The total is always kept.
func (s StatusBar) View() string {
	const barPadding = 2
	innerWidth := max(s.Width-barPadding, 0)
	barBg := lipgloss.NewStyle().Background(colorSurface)

	left := barBg.Render(" ") + Logo()
	if s.Destination != "" {
		left += barBg.Render("  ") + styleStatusValue.Background(colorSurface).Render(s.Destination)
	}

	var segments []statusSegment
	if s.Dates != "" && s.Width >= CompactWidth {
		segments = append(segments, statusSegment{styleStatusValue.Background(colorSurface).Render(s.Dates) + barBg.Render("  "), 1})
	}
	if s.Nights != "" {
		segments = append(segments, statusSegment{styleStatusValue.Background(colorSurface).Render(s.Nights) + barBg.Render("  "), 2})
	}
	total := styleStatusLabel.Background(colorSurface).Render("total ") +
		styleStatusTotal.Background(colorSurface).Render(s.Total)
	segments = append(segments, statusSegment{total, 3})

	const minGap = 1
	leftWidth := lipgloss.Width(left)
	segments = dropSegments(segments, innerWidth-leftWidth-minGap)
	right := joinSegments(segments)

	gap := max(innerWidth-leftWidth-lipgloss.Width(right), minGap)
	line := left + barBg.Render(strings.Repeat(" ", gap)) + right
	return styleStatusBar.Width(s.Width).Render(line)
}

// dropSegments removes the lowest-priority segments until the rest fit in
// avail columns. The highest-priority segment is never dropped.
func dropSegments(segments []statusSegment, avail int) []statusSegment {
	for len(segments) > 1 && lipgloss.Width(joinSegments(segments)) > avail {
		lowest := 0
		for i, seg := range segments {
			if seg.priority < segments[lowest].priority {
				lowest = i
			}
		}
		segments = append(segments[:lowest:lowest], segments[lowest+1:]...)
	}
	return segments
}

func joinSegments(segments []statusSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.text)
	}
	return b.String()
}
