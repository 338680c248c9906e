// Package calendar implements the date-range picker: a navigable month grid
// that collects a check-in and a check-out date, rejects past days and keeps
// check-out strictly after check-in.
package calendar

import (
	"time"

	"github.com/papapumpkin/astrostay/internal/booking"
)

// CellState is the display state of one grid cell.
type CellState int

const (
	// CellBlank pads the first week up to the month's first weekday.
	CellBlank CellState = iota
	// CellPast is a day before today; it cannot be picked.
	CellPast
	// CellToday is today with no selection on it.
	CellToday
	// CellSelectedStart is the check-in day.
	CellSelectedStart
	// CellSelectedEnd is the check-out day.
	CellSelectedEnd
	// CellInRange lies strictly between check-in and check-out.
	CellInRange
	// CellNormal is any other pickable day.
	CellNormal
)

// String returns a short state name.
func (s CellState) String() string {
	switch s {
	case CellBlank:
		return "blank"
	case CellPast:
		return "past-disabled"
	case CellToday:
		return "today"
	case CellSelectedStart:
		return "selected-start"
	case CellSelectedEnd:
		return "selected-end"
	case CellInRange:
		return "in-range"
	case CellNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Selectable reports whether a day in this state may be picked.
func (s CellState) Selectable() bool {
	return s != CellBlank && s != CellPast
}

// Cell is one slot of the month grid. Day is 0 for blank cells.
type Cell struct {
	Day     int
	Date    booking.Date
	State   CellState
	IsToday bool
}

// Columns is the number of weekday columns; weeks start on Sunday.
const Columns = 7

// Weekdays holds the column headings.
var Weekdays = [Columns]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Render projects sel onto month m. The result has one blank cell per
// weekday before the 1st, then one cell per day of the month. It reads sel
// and never modifies it.
func Render(sel *booking.Selection, today booking.Date, m booking.Month) []Cell {
	lead := int(m.First().Weekday() - time.Sunday)
	days := m.Days()

	cells := make([]Cell, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{State: CellBlank})
	}
	for day := 1; day <= days; day++ {
		d := booking.Date{Year: m.Year, Month: m.Month, Day: day}
		cells = append(cells, Cell{
			Day:     day,
			Date:    d,
			State:   cellState(sel, today, d),
			IsToday: d == today,
		})
	}
	return cells
}

// cellState resolves precedence: past days are disabled outright; then the
// range endpoints, then the interior, then today.
func cellState(sel *booking.Selection, today, d booking.Date) CellState {
	switch {
	case d.Before(today):
		return CellPast
	case !sel.CheckIn.IsZero() && d == sel.CheckIn:
		return CellSelectedStart
	case !sel.CheckOut.IsZero() && d == sel.CheckOut:
		return CellSelectedEnd
	case sel.HasDates() && d.After(sel.CheckIn) && d.Before(sel.CheckOut):
		return CellInRange
	case d == today:
		return CellToday
	default:
		return CellNormal
	}
}

// Weeks splits a rendered month into rows of Columns cells; the last row is
// padded with blanks.
func Weeks(cells []Cell) [][]Cell {
	var rows [][]Cell
	for start := 0; start < len(cells); start += Columns {
		end := start + Columns
		row := make([]Cell, Columns)
		if end > len(cells) {
			copy(row, cells[start:])
		} else {
			copy(row, cells[start:end])
		}
		rows = append(rows, row)
	}
	return rows
}
