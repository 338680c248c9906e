package calendar

import (
	"errors"
	"time"

	"github.com/papapumpkin/astrostay/internal/booking"
)

// Sentinel errors surfaced to the user as validation messages.
var (
	// ErrCheckoutNotAfterCheckin rejects a check-out on or before check-in.
	ErrCheckoutNotAfterCheckin = errors.New("check-out date must be after check-in date")
	// ErrPastDate rejects a directly entered date before today.
	ErrPastDate = errors.New("date is in the past")
)

// AdvanceDelay is the pause between picking a check-in and the calendar
// switching to check-out, so the highlight is visible before the view moves.
const AdvanceDelay = 300 * time.Millisecond

// State is the picker's position in the selection state machine.
type State int

const (
	// StateIdle means the overlay is closed.
	StateIdle State = iota
	// StateAwaitingCheckIn means the next pick sets check-in.
	StateAwaitingCheckIn
	// StateAwaitingCheckOut means the next pick sets check-out.
	StateAwaitingCheckOut
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAwaitingCheckIn:
		return "awaiting-check-in"
	case StateAwaitingCheckOut:
		return "awaiting-check-out"
	default:
		return "idle"
	}
}

// Result describes what a SelectDay call did.
type Result struct {
	// Accepted is false when the pick was silently ignored (past day,
	// overlay closed).
	Accepted bool
	// Advance is non-zero after a check-in pick. The caller passes it to
	// Advance once AdvanceDelay has elapsed.
	Advance int
	// Closed reports that the pick closed the overlay.
	Closed bool
}

// Option configures a Picker.
type Option func(*Picker)

// WithClock overrides the clock used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(p *Picker) { p.now = now }
}

// WithOnChange registers a callback run after every successful change to
// the selected dates.
func WithOnChange(fn func()) Option {
	return func(p *Picker) { p.onChange = fn }
}

// Picker drives the date-range selection over a shared booking.Selection.
// It is not safe for concurrent use; it expects to be called from a single
// event loop.
type Picker struct {
	sel      *booking.Selection
	now      func() time.Time
	onChange func()
	open     bool

	// Auto-advance bookkeeping. seq grows on every scheduled advance so a
	// stale timer can be told apart from the current one.
	seq         int
	pending     int
	pendingFrom booking.Date
}

// NewPicker creates a picker editing sel.
func NewPicker(sel *booking.Selection, opts ...Option) *Picker {
	p := &Picker{sel: sel, now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Today returns the current day according to the picker's clock.
func (p *Picker) Today() booking.Date {
	return booking.Today(p.now)
}

// IsOpen reports whether the calendar overlay is showing.
func (p *Picker) IsOpen() bool { return p.open }

// Focus returns the field the calendar is editing.
func (p *Picker) Focus() booking.Field { return p.sel.Focus }

// Cursor returns the month on display.
func (p *Picker) Cursor() booking.Month { return p.sel.Cursor }

// State returns the state machine position.
func (p *Picker) State() State {
	if !p.open {
		return StateIdle
	}
	switch p.sel.Focus {
	case booking.FieldCheckIn:
		return StateAwaitingCheckIn
	case booking.FieldCheckOut:
		return StateAwaitingCheckOut
	}
	return StateIdle
}

// AdvancePending reports whether a check-in pick is waiting to hand focus
// to check-out.
func (p *Picker) AdvancePending() bool { return p.pending != 0 }

// Open shows the calendar editing field. The grid starts on the month of
// the field's current value, or today's month when it has none. Reopening
// abandons any pending auto-advance.
func (p *Picker) Open(field booking.Field) {
	if field == booking.FieldNone {
		return
	}
	p.sel.Focus = field
	if v := p.sel.Value(field); !v.IsZero() {
		p.sel.Cursor = booking.MonthOf(v)
	} else {
		p.sel.Cursor = booking.MonthOf(p.Today())
	}
	p.open = true
	p.pending = 0
}

// Close hides the calendar. The selection is kept.
func (p *Picker) Close() {
	p.open = false
	p.pending = 0
}

// Navigate moves the grid by delta months. There is no lower or upper bound.
func (p *Picker) Navigate(delta int) {
	p.sel.Cursor = p.sel.Cursor.Add(delta)
}

// SelectDay applies a pick from the grid. Past days are ignored without an
// error. A check-out on or before the check-in fails with
// ErrCheckoutNotAfterCheckin and leaves the selection as it was.
func (p *Picker) SelectDay(d booking.Date) (Result, error) {
	if !p.open || d.Before(p.Today()) {
		return Result{}, nil
	}

	switch p.sel.Focus {
	case booking.FieldCheckIn:
		p.sel.CheckIn = d
		if !p.sel.CheckOut.IsZero() && !p.sel.CheckOut.After(d) {
			p.sel.CheckOut = booking.Date{}
		}
		p.seq++
		p.pending = p.seq
		p.pendingFrom = d
		p.changed()
		return Result{Accepted: true, Advance: p.pending}, nil

	case booking.FieldCheckOut:
		if !p.sel.CheckIn.IsZero() && !d.After(p.sel.CheckIn) {
			return Result{}, ErrCheckoutNotAfterCheckin
		}
		p.sel.CheckOut = d
		p.open = false
		p.pending = 0
		p.changed()
		return Result{Accepted: true, Closed: true}, nil
	}
	return Result{}, nil
}

// Advance completes the auto-advance scheduled by a check-in pick. Tokens
// from superseded picks, or arriving after the overlay was closed or
// reopened, are ignored and Advance returns false. With check-out still
// unset, focus moves to check-out and the grid to the month after the
// picked check-in; otherwise the overlay closes.
func (p *Picker) Advance(token int) bool {
	if token == 0 || token != p.pending || !p.open {
		return false
	}
	p.pending = 0
	if !p.sel.CheckIn.IsZero() && p.sel.CheckOut.IsZero() {
		p.sel.Focus = booking.FieldCheckOut
		p.sel.Cursor = booking.MonthOf(p.pendingFrom).Add(1)
		return true
	}
	p.open = false
	return true
}

// Clear empties the field that has focus: check-in when editing check-in,
// check-out when editing check-out. With no focus it does nothing.
func (p *Picker) Clear() {
	switch p.sel.Focus {
	case booking.FieldCheckIn:
		p.sel.CheckIn = booking.Date{}
	case booking.FieldCheckOut:
		p.sel.CheckOut = booking.Date{}
	default:
		return
	}
	p.changed()
}

// Enter sets field directly, as typed into a date field rather than picked
// from the grid. It applies the same ordering rules as SelectDay but does
// not move focus or touch the overlay. The zero date clears the field.
func (p *Picker) Enter(field booking.Field, d booking.Date) error {
	if !d.IsZero() && d.Before(p.Today()) {
		return ErrPastDate
	}
	switch field {
	case booking.FieldCheckIn:
		p.sel.CheckIn = d
		if !d.IsZero() && !p.sel.CheckOut.IsZero() && !p.sel.CheckOut.After(d) {
			p.sel.CheckOut = booking.Date{}
		}
	case booking.FieldCheckOut:
		if !d.IsZero() && !p.sel.CheckIn.IsZero() && !d.After(p.sel.CheckIn) {
			return ErrCheckoutNotAfterCheckin
		}
		p.sel.CheckOut = d
	default:
		return nil
	}
	p.changed()
	return nil
}

// Grid renders the month under the cursor.
func (p *Picker) Grid() []Cell {
	return Render(p.sel, p.Today(), p.sel.Cursor)
}

func (p *Picker) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}
