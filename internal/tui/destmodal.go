package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/astrostay/internal/catalog"
	"github.com/papapumpkin/astrostay/internal/pricing"
)

// DestinationModal shows every detail of one catalog entry in a scrollable
// panel floating over the page.
type DestinationModal struct {
	Destination catalog.Destination
	Panel       DetailPanel
}

// NewDestinationModal builds the modal for d sized to fit a width×height
// terminal.
func NewDestinationModal(d catalog.Destination, width, height int) *DestinationModal {
	w, h := modalSize(width, height)
	m := &DestinationModal{
		Destination: d,
		Panel:       NewDetailPanel(w, h),
	}
	m.Panel.SetContentWithHeader(d.Name, FormatDestinationHeader(d), FormatDestinationBody(d, w))
	return m
}

// Resize refits the modal after a terminal resize.
func (m *DestinationModal) Resize(width, height int) {
	w, h := modalSize(width, height)
	m.Panel.SetSize(w, h)
	m.Panel.SetContentWithHeader(m.Destination.Name, FormatDestinationHeader(m.Destination), FormatDestinationBody(m.Destination, w))
}

func modalSize(width, height int) (int, int) {
	w := min(max(width-8, 30), 76)
	h := max(height-10, 6)
	return w, h
}

// View renders the modal with a booking hint underneath.
func (m *DestinationModal) View() string {
	hint := styleOverlayHint.Render("b: book this destination  esc: close")
	return lipgloss.JoinVertical(lipgloss.Left, m.Panel.View(), hint)
}

// FormatDestinationHeader renders the tagline and key facts of d.
func FormatDestinationHeader(d catalog.Destination) string {
	label := styleDetailHeaderLabel.Render
	value := styleDetailHeaderValue.Render

	var b strings.Builder
	if d.Tagline != "" {
		b.WriteString(styleDetailDim.Render(d.Tagline))
		b.WriteString("\n")
	}
	b.WriteString(label("price: "))
	b.WriteString(stylePrice.Render(pricing.FormatMoney(d.PricePerNight()) + "/night"))
	b.WriteString("  ")
	b.WriteString(label("rating: "))
	b.WriteString(value(d.Rating))
	b.WriteString("\n")
	b.WriteString(label("travel: "))
	b.WriteString(value(d.TravelTime))
	b.WriteString("  ")
	b.WriteString(label("best time: "))
	b.WriteString(value(d.BestTime))
	b.WriteString("  ")
	b.WriteString(label("capacity: "))
	b.WriteString(value(d.Capacity))
	return b.String()
}

// FormatDestinationBody renders the description and lists of d wrapped to
// width.
func FormatDestinationBody(d catalog.Destination, width int) string {
	wrap := lipgloss.NewStyle().Width(max(width-2, 10))
	var b strings.Builder
	if d.Description != "" {
		b.WriteString(wrap.Render(d.Description))
		b.WriteString("\n")
	}
	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(styleDetailTitle.Render(title))
		b.WriteString("\n")
		for _, it := range items {
			b.WriteString(wrap.Render("• " + it))
			b.WriteString("\n")
		}
	}
	writeList("Features", d.Features)
	writeList("Amenities", d.Amenities)
	if len(d.Experiences) > 0 {
		b.WriteString("\n")
		b.WriteString(styleDetailTitle.Render("Experiences"))
		b.WriteString("\n")
		for _, e := range d.Experiences {
			b.WriteString(styleDetailHeaderValue.Render("◆ " + e.Title))
			b.WriteString("\n")
			b.WriteString(wrap.Render(e.Description))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
