package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/shopspring/decimal"

	"github.com/papapumpkin/astrostay/internal/booking"
	"github.com/papapumpkin/astrostay/internal/reservation"
)

// BookingField is a row of the booking form.
type BookingField int

// Booking form rows, top to bottom.
const (
	FieldDestination BookingField = iota
	FieldCheckIn
	FieldCheckOut
	FieldTravelers
	FieldClass
	FieldConfirm
	bookingFieldCount
)

// BookingForm renders the booking widget. Values live on the desk; the form
// holds only the focused row and the raw traveler text.
type BookingForm struct {
	Focus     BookingField
	Travelers textinput.Model
}

// NewBookingForm creates the form with one traveler pre-filled.
func NewBookingForm() BookingForm {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "1"
	ti.CharLimit = 3
	ti.Width = 5
	ti.SetValue("1")
	return BookingForm{Travelers: ti}
}

// MoveFocus moves the focused row by delta, clamped to the form.
func (f *BookingForm) MoveFocus(delta int) {
	f.Focus = BookingField(min(max(int(f.Focus)+delta, 0), int(bookingFieldCount)-1))
	if f.Focus == FieldTravelers {
		f.Travelers.Focus()
	} else {
		f.Travelers.Blur()
	}
}

// EditingText reports whether key presses go to the traveler input.
func (f BookingForm) EditingText() bool {
	return f.Focus == FieldTravelers
}

// Reset restores the traveler field after a confirmed booking.
func (f *BookingForm) Reset() {
	f.Travelers.SetValue("1")
	f.Focus = FieldDestination
	f.Travelers.Blur()
}

// cycleDestination returns the destination delta steps from cur. From unset
// it starts at the first or last entry.
func cycleDestination(cur booking.Destination, delta int, keys []booking.Destination) booking.Destination {
	if len(keys) == 0 {
		return booking.DestinationNone
	}
	idx := -1
	for i, k := range keys {
		if k == cur {
			idx = i
		}
	}
	if idx < 0 {
		if delta < 0 {
			return keys[len(keys)-1]
		}
		return keys[0]
	}
	n := len(keys)
	return keys[((idx+delta)%n+n)%n]
}

// cycleClass returns the cabin class delta steps from cur.
func cycleClass(cur booking.CabinClass, delta int) booking.CabinClass {
	n := len(booking.CabinClasses)
	for i, c := range booking.CabinClasses {
		if c == cur {
			return booking.CabinClasses[((i+delta)%n+n)%n]
		}
	}
	return booking.Standard
}

// View renders the form rows against the desk's current state.
func (f BookingForm) View(desk *reservation.Desk) string {
	sel := desk.Selection()
	q := desk.Quote()

	var b strings.Builder
	b.WriteString(styleDetailTitle.Render("Book Your Stay"))
	b.WriteString("\n\n")

	destName := ""
	if d, ok := desk.Catalog().Destination(sel.Destination); ok {
		destName = d.Name
	}

	rows := []struct {
		field BookingField
		label string
		value string
	}{
		{FieldDestination, "Destination", choice(destName, "Choose a destination")},
		{FieldCheckIn, "Check-in", dateOrPlaceholder(sel.CheckIn)},
		{FieldCheckOut, "Check-out", dateOrPlaceholder(sel.CheckOut)},
		{FieldTravelers, "Travelers", f.Travelers.View()},
		{FieldClass, "Cabin class", choice(classLabel(sel.Class, desk.Catalog().Multiplier(sel.Class)), "")},
	}
	for _, r := range rows {
		b.WriteString(f.row(r.field, r.label, r.value))
		b.WriteString("\n")
	}

	if nights := desk.NightsDisplay(); nights != "" {
		b.WriteString("  ")
		b.WriteString(styleFieldLabel.Render("Stay"))
		b.WriteString(styleFieldValue.Render(nights))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(styleFieldLabel.Render("Total"))
	b.WriteString(stylePrice.Render(q.Display()))
	b.WriteString("\n\n")

	button := styleButton
	if f.Focus == FieldConfirm {
		button = styleButtonFocused
	}
	b.WriteString("  ")
	b.WriteString(button.Render("Confirm Booking"))
	return b.String()
}

func (f BookingForm) row(field BookingField, label, value string) string {
	indicator := "  "
	labelStyle := styleFieldLabel
	if f.Focus == field {
		indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
		labelStyle = labelStyle.Inherit(styleRowSelected)
	}
	return indicator + labelStyle.Render(label) + value
}

func choice(value, placeholder string) string {
	if value == "" {
		return styleFieldPlaceholder.Render(placeholder)
	}
	return styleDim.Render("‹ ") + styleFieldValue.Render(value) + styleDim.Render(" ›")
}

func classLabel(c booking.CabinClass, multiplier decimal.Decimal) string {
	if c == "" {
		c = booking.Standard
	}
	name := strings.ToUpper(string(c[:1])) + string(c[1:])
	if multiplier.Equal(decimal.NewFromInt(1)) {
		return name
	}
	return name + " (×" + multiplier.String() + ")"
}

// travelersText returns the raw traveler text for the desk.
func (f BookingForm) travelersText() string {
	return f.Travelers.Value()
}

// sanitizeTravelers keeps only digits so the field stays numeric.
func sanitizeTravelers(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if n, err := strconv.Atoi(out); err == nil && n > 999 {
		return "999"
	}
	return out
}
