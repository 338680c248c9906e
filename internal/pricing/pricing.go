// Package pricing computes the total price of a stay from the booking
// selection. Incomplete or invalid input is never an error: it prices at zero.
package pricing

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/papapumpkin/astrostay/internal/booking"
)

// Rates supplies base prices and class multipliers. *catalog.Catalog
// satisfies it.
type Rates interface {
	BasePrice(dest booking.Destination) (decimal.Decimal, bool)
	Multiplier(class booking.CabinClass) decimal.Decimal
}

// Input is everything the price depends on.
type Input struct {
	Destination booking.Destination
	CheckIn     booking.Date
	CheckOut    booking.Date
	Travelers   int
	Class       booking.CabinClass
}

// InputOf extracts the pricing input from a selection.
func InputOf(s *booking.Selection) Input {
	return Input{
		Destination: s.Destination,
		CheckIn:     s.CheckIn,
		CheckOut:    s.CheckOut,
		Travelers:   s.Travelers,
		Class:       s.Class,
	}
}

// Quote is a computed price with its breakdown. The zero Quote is the "$0"
// quote for incomplete input.
type Quote struct {
	Destination booking.Destination
	Nights      int
	Travelers   int
	Class       booking.CabinClass
	BasePrice   decimal.Decimal
	Multiplier  decimal.Decimal
	Total       decimal.Decimal
}

// IsZero reports whether the quote prices at zero, i.e. the booking cannot
// be confirmed.
func (q Quote) IsZero() bool {
	return !q.Total.IsPositive()
}

// Display returns the total formatted for display, e.g. "$18,000".
func (q Quote) Display() string {
	return FormatMoney(q.Total)
}

// Engine computes quotes against a rate table.
type Engine struct {
	rates Rates
}

// NewEngine creates an engine using rates.
func NewEngine(rates Rates) *Engine {
	return &Engine{rates: rates}
}

// SetRates swaps the rate table, e.g. after a catalog reload.
func (e *Engine) SetRates(rates Rates) {
	e.rates = rates
}

// Compute prices the input. It returns the zero Quote when the destination
// or either date is missing, or when check-in is not before check-out.
func (e *Engine) Compute(in Input) Quote {
	if in.Destination == booking.DestinationNone || in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return Quote{}
	}
	if !in.CheckIn.Before(in.CheckOut) {
		return Quote{}
	}
	base, ok := e.rates.BasePrice(in.Destination)
	if !ok {
		return Quote{}
	}

	travelers := in.Travelers
	if travelers < 1 {
		travelers = 1
	}
	class, _ := booking.ParseCabinClass(string(in.Class))
	multiplier := e.rates.Multiplier(class)
	nights := booking.NightsBetween(in.CheckIn, in.CheckOut)

	total := decimal.NewFromInt(int64(nights)).
		Mul(decimal.NewFromInt(int64(travelers))).
		Mul(base).
		Mul(multiplier)

	return Quote{
		Destination: in.Destination,
		Nights:      nights,
		Travelers:   travelers,
		Class:       class,
		BasePrice:   base,
		Multiplier:  multiplier,
		Total:       total,
	}
}

// ParseTravelers reads the traveler count from a raw form field. Blank,
// non-numeric, zero and negative values count as one traveler.
func ParseTravelers(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// FormatMoney renders an amount as dollars with thousands separators.
// Whole amounts print without cents; others keep up to two decimals.
func FormatMoney(amount decimal.Decimal) string {
	if !amount.IsPositive() {
		return "$0"
	}
	rounded := amount.Round(2)
	if rounded.IsInteger() {
		return "$" + humanize.Comma(rounded.IntPart())
	}
	return "$" + humanize.FormatFloat("#,###.##", rounded.InexactFloat64())
}
