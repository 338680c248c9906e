package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/astrostay/internal/booking"
	"github.com/papapumpkin/astrostay/internal/calendar"
)

// cellWidth is the rendered width of one day, including spacing.
const cellWidth = 4

// CalendarView draws the picker's month grid and tracks the keyboard cursor.
// The picker owns the selection and the month on display; the view only owns
// which day the cursor is on.
type CalendarView struct {
	Day booking.Date
}

// Reset puts the cursor on the focused field's date, or on today when that
// month is showing, or on the first of the displayed month.
func (v *CalendarView) Reset(p *calendar.Picker, sel booking.Selection) {
	cur := p.Cursor()
	value := sel.Value(p.Focus())
	switch {
	case !value.IsZero() && cur.Contains(value):
		v.Day = value
	case cur.Contains(p.Today()):
		v.Day = p.Today()
	default:
		v.Day = cur.First()
	}
}

// Move shifts the cursor by days, following it into the next or previous
// month when it leaves the one on display.
func (v *CalendarView) Move(p *calendar.Picker, days int) {
	v.Day = v.Day.AddDays(days)
	target := booking.MonthOf(v.Day)
	cur := p.Cursor()
	if delta := monthsBetween(cur, target); delta != 0 {
		p.Navigate(delta)
	}
}

// Navigate shows the month delta months away, keeping the cursor on the
// same day of the month where it exists.
func (v *CalendarView) Navigate(p *calendar.Picker, delta int) {
	p.Navigate(delta)
	cur := p.Cursor()
	day := min(max(v.Day.Day, 1), cur.Days())
	v.Day = booking.NewDate(cur.Year, cur.Month, day)
}

// Sync moves the cursor into the displayed month after the picker changed it
// on its own, e.g. on auto-advance to check-out.
func (v *CalendarView) Sync(p *calendar.Picker, sel booking.Selection) {
	if !p.Cursor().Contains(v.Day) {
		v.Reset(p, sel)
	}
}

func monthsBetween(from, to booking.Month) int {
	return (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
}

// View renders the calendar overlay box.
func (v CalendarView) View(p *calendar.Picker, sel booking.Selection) string {
	var b strings.Builder

	title := "Select check-in date"
	if p.Focus() == booking.FieldCheckOut {
		title = "Select check-out date"
	}
	b.WriteString(styleOverlayTitle.Render(title))
	b.WriteString("\n\n")

	gridWidth := calendar.Columns * cellWidth
	month := styleRowSelected.Render(p.Cursor().String())
	nav := lipgloss.PlaceHorizontal(gridWidth-4, lipgloss.Center, month)
	b.WriteString(styleDim.Render("◀ ") + nav + styleDim.Render(" ▶"))
	b.WriteString("\n")

	var head strings.Builder
	for _, wd := range calendar.Weekdays {
		head.WriteString(fmt.Sprintf("%*s", cellWidth, wd))
	}
	b.WriteString(styleCalendarHeader.Render(head.String()))
	b.WriteString("\n")

	for _, week := range calendar.Weeks(p.Grid()) {
		for _, c := range week {
			b.WriteString(v.renderCell(c))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleFieldLabel.Render("Check-in"))
	b.WriteString(dateOrPlaceholder(sel.CheckIn))
	b.WriteString("\n")
	b.WriteString(styleFieldLabel.Render("Check-out"))
	b.WriteString(dateOrPlaceholder(sel.CheckOut))
	if n := sel.Nights(); n > 0 {
		b.WriteString("\n")
		b.WriteString(styleFieldLabel.Render("Nights"))
		b.WriteString(styleFieldValue.Render(fmt.Sprintf("%d", n)))
	}
	b.WriteString("\n\n")
	b.WriteString(styleOverlayHint.Render("arrows: day  p/n: month  enter: pick  c: clear  esc: close"))

	return styleOverlay.Render(b.String())
}

func (v CalendarView) renderCell(c calendar.Cell) string {
	if c.State == calendar.CellBlank {
		return strings.Repeat(" ", cellWidth)
	}
	text := fmt.Sprintf("%2d", c.Day)
	style := cellStyle(c.State)
	if c.Date == v.Day {
		style = style.Inherit(styleCellCursor)
	}
	return "  " + style.Render(text)
}

func cellStyle(s calendar.CellState) lipgloss.Style {
	switch s {
	case calendar.CellPast:
		return styleCellPast
	case calendar.CellToday:
		return styleCellToday
	case calendar.CellSelectedStart, calendar.CellSelectedEnd:
		return styleCellSelected
	case calendar.CellInRange:
		return styleCellInRange
	default:
		return styleCellNormal
	}
}

func dateOrPlaceholder(d booking.Date) string {
	if d.IsZero() {
		return styleFieldPlaceholder.Render("Select date")
	}
	return styleFieldValue.Render(d.Display())
}
