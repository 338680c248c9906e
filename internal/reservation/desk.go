// Package reservation ties the booking selection, the date picker and the
// price engine together. Every mutation goes through the Desk, which
// recomputes the quote afterwards and tells its subscribers.
package reservation

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/papapumpkin/astrostay/internal/booking"
	"github.com/papapumpkin/astrostay/internal/calendar"
	"github.com/papapumpkin/astrostay/internal/catalog"
	"github.com/papapumpkin/astrostay/internal/pricing"
	"github.com/papapumpkin/astrostay/internal/telemetry"
)

// ErrIncompleteBooking is returned by Submit when the selection does not
// price above zero.
var ErrIncompleteBooking = errors.New("please fill in all fields correctly to calculate your booking price")

// Option configures a Desk.
type Option func(*Desk)

// WithClock sets the clock used for "today".
func WithClock(now func() time.Time) Option {
	return func(d *Desk) { d.now = now }
}

// WithCatalog replaces the embedded default catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(d *Desk) { d.catalog = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *Desk) { d.logger = l }
}

// WithTelemetry records quotes and bookings to em.
func WithTelemetry(em *telemetry.Emitter) Option {
	return func(d *Desk) { d.events = em }
}

// Desk owns the session's booking state.
type Desk struct {
	sel     *booking.Selection
	picker  *calendar.Picker
	engine  *pricing.Engine
	catalog *catalog.Catalog

	now    func() time.Time
	logger *zap.Logger
	events *telemetry.Emitter
	newRef func() string

	quote pricing.Quote
	subs  []func(pricing.Quote)
}

// NewDesk creates a desk with an empty selection.
func NewDesk(opts ...Option) *Desk {
	d := &Desk{
		now:    time.Now,
		logger: zap.NewNop(),
		newRef: uuid.NewString,
	}
	for _, o := range opts {
		o(d)
	}
	if d.catalog == nil {
		d.catalog = catalog.Default()
	}
	d.sel = booking.NewSelection(booking.Today(d.now))
	d.engine = pricing.NewEngine(d.catalog)
	d.picker = calendar.NewPicker(d.sel,
		calendar.WithClock(d.now),
		calendar.WithOnChange(d.recompute),
	)
	return d
}

// Picker returns the date picker editing this desk's selection.
func (d *Desk) Picker() *calendar.Picker { return d.picker }

// Catalog returns the catalog currently used for pricing.
func (d *Desk) Catalog() *catalog.Catalog { return d.catalog }

// Selection returns a copy of the current selection.
func (d *Desk) Selection() booking.Selection { return *d.sel }

// Quote returns the most recently computed quote.
func (d *Desk) Quote() pricing.Quote { return d.quote }

// NightsDisplay returns the nights label, or "" when it should be hidden.
func (d *Desk) NightsDisplay() string {
	switch n := d.quote.Nights; n {
	case 0:
		return ""
	case 1:
		return "1 night"
	default:
		return strconv.Itoa(n) + " nights"
	}
}

// OnChange subscribes fn to every recompute. Subscribers run synchronously
// in registration order.
func (d *Desk) OnChange(fn func(pricing.Quote)) {
	d.subs = append(d.subs, fn)
}

// SetCatalog swaps the catalog, e.g. after the override file changed, and
// reprices the selection.
func (d *Desk) SetCatalog(c *catalog.Catalog) {
	if c == nil {
		return
	}
	d.catalog = c
	d.engine.SetRates(c)
	d.logger.Info("catalog swapped", zap.Int("destinations", len(c.Destinations)))
	d.recompute()
}

// SetDestination selects a destination by key. An empty key clears it.
func (d *Desk) SetDestination(key string) error {
	if key == "" {
		d.sel.Destination = booking.DestinationNone
		d.recompute()
		return nil
	}
	dest, err := booking.ParseDestination(key)
	if err != nil {
		return err
	}
	if _, ok := d.catalog.Destination(dest); !ok {
		return fmt.Errorf("%w %q", booking.ErrUnknownDestination, key)
	}
	d.sel.Destination = dest
	d.recompute()
	return nil
}

// BookFromDestination pre-fills the destination chosen in the detail view.
func (d *Desk) BookFromDestination(key string) error {
	if err := d.SetDestination(key); err != nil {
		return err
	}
	d.logger.Debug("destination pre-filled", zap.String("destination", key))
	return nil
}

// SetTravelers reads the raw traveler field. Anything that is not a positive
// number counts as one traveler.
func (d *Desk) SetTravelers(raw string) {
	d.sel.Travelers = pricing.ParseTravelers(raw)
	d.recompute()
}

// SetClass sets the cabin class. Unknown keys select standard.
func (d *Desk) SetClass(key string) {
	d.sel.Class, _ = booking.ParseCabinClass(key)
	d.recompute()
}

// Confirmation is a completed booking.
type Confirmation struct {
	Reference       string
	Destination     booking.Destination
	DestinationName string
	CheckIn         booking.Date
	CheckOut        booking.Date
	Nights          int
	Travelers       int
	Class           booking.CabinClass
	Quote           pricing.Quote
}

// TotalDisplay returns the formatted total.
func (c Confirmation) TotalDisplay() string { return c.Quote.Display() }

// Submit confirms the booking. A selection that prices at zero is refused
// with ErrIncompleteBooking and left untouched; otherwise the selection is
// reset for the next booking.
func (d *Desk) Submit() (Confirmation, error) {
	d.recompute()
	q := d.quote
	if q.IsZero() {
		d.logger.Info("booking rejected", zap.String("reason", "incomplete"))
		_ = d.events.Record(telemetry.KindBookingRejected, "", map[string]string{
			"destination": string(d.sel.Destination),
			"check_in":    d.sel.CheckIn.String(),
			"check_out":   d.sel.CheckOut.String(),
		})
		return Confirmation{}, ErrIncompleteBooking
	}

	c := Confirmation{
		Reference:   d.newRef(),
		Destination: d.sel.Destination,
		CheckIn:     d.sel.CheckIn,
		CheckOut:    d.sel.CheckOut,
		Nights:      q.Nights,
		Travelers:   q.Travelers,
		Class:       q.Class,
		Quote:       q,
	}
	if dest, ok := d.catalog.Destination(c.Destination); ok {
		c.DestinationName = dest.Name
	}

	d.logger.Info("booking confirmed",
		zap.String("ref", c.Reference),
		zap.String("destination", string(c.Destination)),
		zap.Stringer("check_in", c.CheckIn),
		zap.Stringer("check_out", c.CheckOut),
		zap.Int("nights", c.Nights),
		zap.Int("travelers", c.Travelers),
		zap.String("class", string(c.Class)),
		zap.String("total", q.Total.String()),
	)
	_ = d.events.Record(telemetry.KindBookingDone, c.Reference, map[string]any{
		"destination": c.Destination,
		"nights":      c.Nights,
		"travelers":   c.Travelers,
		"class":       c.Class,
		"total":       q.Total.String(),
	})

	d.picker.Close()
	d.sel.Reset(booking.Today(d.now))
	d.recompute()
	return c, nil
}

func (d *Desk) recompute() {
	prev := d.quote
	d.quote = d.engine.Compute(pricing.InputOf(d.sel))
	if !d.quote.IsZero() && !d.quote.Total.Equal(prev.Total) {
		_ = d.events.Record(telemetry.KindQuote, "", map[string]any{
			"destination": d.quote.Destination,
			"nights":      d.quote.Nights,
			"total":       d.quote.Total.String(),
		})
	}
	for _, fn := range d.subs {
		fn(d.quote)
	}
}
