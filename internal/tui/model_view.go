package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/astrostay/internal/pricing"
)

// View renders the page with any overlay composited on top.
func (m AppModel) View() string {
	if m.Width > 0 && (m.Width < MinWidth || m.Height < MinHeight) {
		return centerOverlay(styleDim.Render(fmt.Sprintf("Terminal too small (%d×%d)", m.Width, m.Height)), m.Width, m.Height)
	}

	top := []string{m.statusBar().View()}
	if m.Stars != nil && m.Height >= SkyCollapseHeight {
		top = append(top, m.Stars.View(LogoPlain()+"  ·  Your Home Among the Stars"))
	}
	top = append(top, m.renderTabs())

	var body string
	switch m.Section {
	case SectionBooking:
		body = m.Booking.View(m.Desk)
	case SectionContact:
		body = m.Contact.View()
	default:
		body = m.renderDestinations()
	}

	footer := Footer{Width: m.Width, Bindings: m.footerBindings()}.View()
	toasts := RenderToasts(m.Toasts, m.Width)

	head := strings.Join(top, "\n")
	bottom := footer
	if toasts != "" {
		bottom = toasts + "\n" + footer
	}
	bodyHeight := m.Height - lipgloss.Height(head) - lipgloss.Height(bottom) - 1
	if bodyHeight > 0 {
		body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	}
	page := head + "\n\n" + body + "\n" + bottom

	switch {
	case m.Confirm != nil:
		return compositeOverlay(page, m.Confirm.View(), m.Width, m.Height)
	case m.calendarOpen():
		return compositeOverlay(page, m.Calendar.View(m.Desk.Picker(), m.Desk.Selection()), m.Width, m.Height)
	case m.Modal != nil:
		return compositeOverlay(page, m.Modal.View(), m.Width, m.Height)
	}
	return page
}

func (m AppModel) statusBar() StatusBar {
	sel := m.Desk.Selection()
	sb := StatusBar{
		Width:  m.Width,
		Nights: m.Desk.NightsDisplay(),
		Total:  m.Desk.Quote().Display(),
	}
	if d, ok := m.Desk.Catalog().Destination(sel.Destination); ok {
		sb.Destination = d.Name
	}
	if sel.HasDates() {
		sb.Dates = sel.CheckIn.Display() + " → " + sel.CheckOut.Display()
	}
	return sb
}

func (m AppModel) renderTabs() string {
	tabs := make([]string, 0, sectionCount)
	for i, title := range sectionTitles {
		style := styleTabInactive
		if Section(i) == m.Section {
			style = styleTabActive
		}
		tabs = append(tabs, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m AppModel) renderDestinations() string {
	var b strings.Builder
	b.WriteString(styleDetailTitle.Render("Choose Your Destination"))
	b.WriteString("\n\n")
	for i, d := range m.Desk.Catalog().List() {
		indicator := "  "
		nameStyle := styleRowNormal
		if i == m.DestCursor {
			indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
			nameStyle = styleRowSelected
		}
		price := pricing.FormatMoney(d.PricePerNight()) + "/night"
		b.WriteString(indicator)
		b.WriteString(nameStyle.Width(18).Render(d.Name))
		b.WriteString(stylePrice.Width(14).Render(price))
		if m.Width >= CompactWidth {
			b.WriteString(styleDim.Render(TruncateWithEllipsis(d.Tagline, max(m.Width-40, 10))))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleOverlayHint.Render("enter: details  b: book now"))
	return b.String()
}

func (m AppModel) footerBindings() []key.Binding {
	switch {
	case m.Confirm != nil:
		return []key.Binding{m.Keys.Enter, m.Keys.Back}
	case m.calendarOpen():
		return CalendarFooterBindings(m.Keys)
	case m.Modal != nil:
		return ModalFooterBindings(m.Keys)
	case m.Section == SectionDestinations:
		return PageFooterBindings(m.Keys)
	}
	return FormFooterBindings(m.activeKeys())
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
