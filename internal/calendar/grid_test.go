package calendar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/astrostay/internal/booking"
)

func d(y int, m time.Month, day int) booking.Date { return booking.NewDate(y, m, day) }

// stateAt returns the state of the cell for day in cells.
func stateAt(t *testing.T, cells []Cell, day int) CellState {
	t.Helper()
	for _, c := range cells {
		if c.Day == day {
			return c.State
		}
	}
	t.Fatalf("day %d not in grid", day)
	return CellBlank
}

func TestRender_LeadingBlanksAlignToSunday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		month booking.Month
		lead  int
		days  int
	}{
		{booking.Month{Year: 2025, Month: time.May}, 4, 31},      // Thursday
		{booking.Month{Year: 2025, Month: time.June}, 0, 30},     // Sunday
		{booking.Month{Year: 2025, Month: time.March}, 6, 31},    // Saturday
		{booking.Month{Year: 2024, Month: time.February}, 4, 29}, // Thursday, leap year
	}

	sel := booking.NewSelection(d(2020, time.January, 1))
	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			t.Parallel()
			cells := Render(sel, d(2020, time.January, 1), tt.month)
			if len(cells) != tt.lead+tt.days {
				t.Fatalf("len = %d, want %d", len(cells), tt.lead+tt.days)
			}
			for i := 0; i < tt.lead; i++ {
				if cells[i].State != CellBlank || cells[i].Day != 0 {
					t.Errorf("cell %d = %+v, want blank", i, cells[i])
				}
			}
			if first := cells[tt.lead]; first.Day != 1 || first.Date.Weekday() != time.Weekday(tt.lead) {
				t.Errorf("first day cell = %+v", first)
			}
		})
	}
}

func TestRender_PastTodayNormal(t *testing.T) {
	t.Parallel()
	today := d(2025, time.May, 5)
	sel := booking.NewSelection(today)
	cells := Render(sel, today, booking.MonthOf(today))

	for day := 1; day <= 4; day++ {
		if got := stateAt(t, cells, day); got != CellPast {
			t.Errorf("May %d = %v, want past-disabled", day, got)
		}
	}
	if got := stateAt(t, cells, 5); got != CellToday {
		t.Errorf("May 5 = %v, want today", got)
	}
	if got := stateAt(t, cells, 6); got != CellNormal {
		t.Errorf("May 6 = %v, want normal", got)
	}
}

func TestRender_PreviousMonthAllPast(t *testing.T) {
	t.Parallel()
	today := d(2025, time.May, 1)
	cells := Render(booking.NewSelection(today), today, booking.Month{Year: 2025, Month: time.April})
	for _, c := range cells {
		if c.Day != 0 && c.State != CellPast {
			t.Errorf("April %d = %v, want past-disabled", c.Day, c.State)
		}
	}
}

func TestRender_RangeWithinMonth(t *testing.T) {
	t.Parallel()
	today := d(2025, time.May, 5)
	sel := booking.NewSelection(today)
	sel.CheckIn = d(2025, time.May, 10)
	sel.CheckOut = d(2025, time.May, 13)

	cells := Render(sel, today, booking.MonthOf(today))
	want := map[int]CellState{
		9:  CellNormal,
		10: CellSelectedStart,
		11: CellInRange,
		12: CellInRange,
		13: CellSelectedEnd,
		14: CellNormal,
	}
	for day, state := range want {
		if got := stateAt(t, cells, day); got != state {
			t.Errorf("May %d = %v, want %v", day, got, state)
		}
	}
}

func TestRender_RangeSpansMonths(t *testing.T) {
	t.Parallel()
	today := d(2025, time.May, 5)
	sel := booking.NewSelection(today)
	sel.CheckIn = d(2025, time.May, 30)
	sel.CheckOut = d(2025, time.July, 2)

	june := Render(sel, today, booking.Month{Year: 2025, Month: time.June})
	for _, c := range june {
		if c.State != CellInRange {
			t.Errorf("June %d = %v, want in-range", c.Day, c.State)
		}
	}

	july := Render(sel, today, booking.Month{Year: 2025, Month: time.July})
	got := []CellState{stateAt(t, july, 1), stateAt(t, july, 2), stateAt(t, july, 3)}
	want := []CellState{CellInRange, CellSelectedEnd, CellNormal}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("July states mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_CheckInOnlyHasNoRange(t *testing.T) {
	t.Parallel()
	today := d(2025, time.May, 5)
	sel := booking.NewSelection(today)
	sel.CheckIn = d(2025, time.May, 5)

	cells := Render(sel, today, booking.MonthOf(today))
	five := cells[4+4]
	if five.State != CellSelectedStart || !five.IsToday {
		t.Errorf("May 5 = %+v, want selected-start and today", five)
	}
	for _, c := range cells {
		if c.State == CellInRange || c.State == CellSelectedEnd {
			t.Errorf("May %d = %v with no check-out", c.Day, c.State)
		}
	}
}

func TestRender_FirstWeekExact(t *testing.T) {
	t.Parallel()
	today := d(2025, time.June, 3)
	sel := booking.NewSelection(today)
	sel.CheckIn = d(2025, time.June, 4)
	sel.CheckOut = d(2025, time.June, 6)

	got := Render(sel, today, booking.MonthOf(today))[:Columns]
	want := []Cell{
		{Day: 1, Date: d(2025, time.June, 1), State: CellPast},
		{Day: 2, Date: d(2025, time.June, 2), State: CellPast},
		{Day: 3, Date: d(2025, time.June, 3), State: CellToday, IsToday: true},
		{Day: 4, Date: d(2025, time.June, 4), State: CellSelectedStart},
		{Day: 5, Date: d(2025, time.June, 5), State: CellInRange},
		{Day: 6, Date: d(2025, time.June, 6), State: CellSelectedEnd},
		{Day: 7, Date: d(2025, time.June, 7), State: CellNormal},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("first week mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_DoesNotMutateSelection(t *testing.T) {
	t.Parallel()
	today := d(2025, time.May, 5)
	sel := booking.NewSelection(today)
	sel.CheckIn = d(2025, time.May, 10)
	before := *sel

	Render(sel, today, booking.Month{Year: 2026, Month: time.January})

	if diff := cmp.Diff(before, *sel); diff != "" {
		t.Errorf("selection mutated (-before +after):\n%s", diff)
	}
}

func TestWeeks(t *testing.T) {
	t.Parallel()
	today := d(2025, time.May, 5)
	cells := Render(booking.NewSelection(today), today, booking.MonthOf(today))
	rows := Weeks(cells)

	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	if rows[0][4].Day != 1 || rows[0][3].State != CellBlank {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[4][6].Day != 31 {
		t.Errorf("last cell = %+v, want May 31", rows[4][6])
	}

	// August 2025 starts on Friday and needs a padded sixth row.
	aug := Weeks(Render(booking.NewSelection(today), today, booking.Month{Year: 2025, Month: time.August}))
	if len(aug) != 6 {
		t.Fatalf("August rows = %d, want 6", len(aug))
	}
	if last := aug[5]; last[0].Day != 31 || last[1].State != CellBlank {
		t.Errorf("August last row = %+v", last)
	}
}

func TestCellState_Selectable(t *testing.T) {
	t.Parallel()
	for _, s := range []CellState{CellBlank, CellPast} {
		if s.Selectable() {
			t.Errorf("%v should not be selectable", s)
		}
	}
	for _, s := range []CellState{CellToday, CellSelectedStart, CellSelectedEnd, CellInRange, CellNormal} {
		if !s.Selectable() {
			t.Errorf("%v should be selectable", s)
		}
	}
}
