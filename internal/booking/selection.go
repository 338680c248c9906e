package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDestination is returned for a destination key outside the catalog.
var ErrUnknownDestination = errors.New("unknown destination")

// Destination is a catalog key.
type Destination string

// Catalog keys. DestinationNone means nothing is selected yet.
const (
	DestinationNone Destination = ""
	Luna            Destination = "luna"
	Mars            Destination = "mars"
	Orbit           Destination = "orbit"
)

// Destinations lists the bookable keys in display order.
var Destinations = []Destination{Luna, Mars, Orbit}

// ParseDestination maps a case-insensitive key to a Destination.
func ParseDestination(key string) (Destination, error) {
	d := Destination(strings.ToLower(strings.TrimSpace(key)))
	switch d {
	case Luna, Mars, Orbit:
		return d, nil
	}
	return DestinationNone, fmt.Errorf("%w %q", ErrUnknownDestination, key)
}

// CabinClass is the service tier.
type CabinClass string

// Cabin classes.
const (
	Standard CabinClass = "standard"
	Luxury   CabinClass = "luxury"
	Elite    CabinClass = "elite"
)

// CabinClasses lists the tiers in display order.
var CabinClasses = []CabinClass{Standard, Luxury, Elite}

// ParseCabinClass maps a key to a CabinClass. Unrecognized keys fall back to
// Standard and report false.
func ParseCabinClass(key string) (CabinClass, bool) {
	c := CabinClass(strings.ToLower(strings.TrimSpace(key)))
	switch c {
	case Standard, Luxury, Elite:
		return c, true
	}
	return Standard, false
}

// Field names which date the open calendar is editing.
type Field int

const (
	// FieldNone means the calendar is not editing anything.
	FieldNone Field = iota
	// FieldCheckIn is the inclusive start of the stay.
	FieldCheckIn
	// FieldCheckOut is the exclusive end of the stay.
	FieldCheckOut
)

// String returns the field's form label.
func (f Field) String() string {
	switch f {
	case FieldCheckIn:
		return "check-in"
	case FieldCheckOut:
		return "check-out"
	default:
		return "none"
	}
}

// Selection is the booking state for one session. It is created once with
// defaults and mutated in place; all mutation goes through the calendar
// picker and the reservation desk.
type Selection struct {
	CheckIn     Date
	CheckOut    Date
	Destination Destination
	Travelers   int
	Class       CabinClass

	Focus  Field
	Cursor Month
}

// NewSelection returns an empty selection with the calendar cursor on
// today's month.
func NewSelection(today Date) *Selection {
	s := &Selection{}
	s.Reset(today)
	return s
}

// Reset restores every field to its default.
func (s *Selection) Reset(today Date) {
	*s = Selection{
		Travelers: 1,
		Class:     Standard,
		Cursor:    MonthOf(today),
	}
}

// Value returns the date stored for f, or the zero date.
func (s *Selection) Value(f Field) Date {
	switch f {
	case FieldCheckIn:
		return s.CheckIn
	case FieldCheckOut:
		return s.CheckOut
	}
	return Date{}
}

// HasDates reports whether both ends of the stay are picked.
func (s *Selection) HasDates() bool {
	return !s.CheckIn.IsZero() && !s.CheckOut.IsZero()
}

// Nights returns the whole nights between check-in and check-out, or 0 when
// either is unset or the range is not ordered.
func (s *Selection) Nights() int {
	if !s.HasDates() || !s.CheckOut.After(s.CheckIn) {
		return 0
	}
	return NightsBetween(s.CheckIn, s.CheckOut)
}

// NightsBetween returns the number of nights from in to out, rounding partial
// days up.
func NightsBetween(in, out Date) int {
	hours := out.Time().Sub(in.Time()).Hours()
	n := int(hours / 24)
	if float64(n)*24 < hours {
		n++
	}
	return n
}
