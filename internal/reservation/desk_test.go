package reservation

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/papapumpkin/astrostay/internal/booking"
	"github.com/papapumpkin/astrostay/internal/calendar"
	"github.com/papapumpkin/astrostay/internal/catalog"
	"github.com/papapumpkin/astrostay/internal/pricing"
	"github.com/papapumpkin/astrostay/internal/telemetry"
)

func fixedClock() time.Time {
	return time.Date(2025, time.February, 20, 12, 0, 0, 0, time.Local)
}

func newTestDesk(t *testing.T, opts ...Option) *Desk {
	t.Helper()
	d := NewDesk(append([]Option{WithClock(fixedClock)}, opts...)...)
	d.newRef = func() string { return "ref-test" }
	return d
}

// pickRange drives the picker the way the calendar overlay does.
func pickRange(t *testing.T, d *Desk, in, out booking.Date) {
	t.Helper()
	p := d.Picker()
	p.Open(booking.FieldCheckIn)
	res, err := p.SelectDay(in)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	require.True(t, p.Advance(res.Advance))
	require.Equal(t, booking.FieldCheckOut, p.Focus())
	res, err = p.SelectDay(out)
	require.NoError(t, err)
	require.True(t, res.Closed)
}

func TestDesk_WorkedExample(t *testing.T) {
	t.Parallel()
	d := newTestDesk(t)

	require.NoError(t, d.SetDestination("mars"))
	pickRange(t, d, booking.NewDate(2025, time.March, 1), booking.NewDate(2025, time.March, 4))
	d.SetTravelers("2")
	d.SetClass("luxury")

	q := d.Quote()
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, "$18,000", q.Display())
	assert.Equal(t, "3 nights", d.NightsDisplay())
}

func TestDesk_IncompleteSelectionPricesAtZero(t *testing.T) {
	t.Parallel()
	d := newTestDesk(t)

	assert.Equal(t, "$0", d.Quote().Display())
	assert.Empty(t, d.NightsDisplay())

	pickRange(t, d, booking.NewDate(2025, time.March, 1), booking.NewDate(2025, time.March, 2))
	assert.Equal(t, "$0", d.Quote().Display(), "no destination yet")
	assert.Zero(t, d.Quote().Nights)

	require.NoError(t, d.SetDestination("luna"))
	assert.Equal(t, "$1,200", d.Quote().Display())
	assert.Equal(t, "1 night", d.NightsDisplay())

	require.NoError(t, d.SetDestination(""))
	assert.True(t, d.Quote().IsZero())
}

func TestDesk_OnChangeFiresForEveryMutation(t *testing.T) {
	t.Parallel()
	d := newTestDesk(t)

	var seen []string
	d.OnChange(func(q pricing.Quote) { seen = append(seen, q.Display()) })

	require.NoError(t, d.SetDestination("orbit"))
	pickRange(t, d, booking.NewDate(2025, time.March, 1), booking.NewDate(2025, time.March, 3))
	d.SetTravelers("")
	d.SetClass("elite")
	d.Picker().Clear()

	assert.Equal(t, []string{"$0", "$0", "$7,000", "$7,000", "$15,750", "$0"}, seen)
}

func TestDesk_SetDestinationRejectsUnknown(t *testing.T) {
	t.Parallel()
	d := newTestDesk(t)

	err := d.SetDestination("venus")
	require.ErrorIs(t, err, booking.ErrUnknownDestination)
	assert.Equal(t, booking.DestinationNone, d.Selection().Destination)

	require.NoError(t, d.BookFromDestination("Mars"))
	assert.Equal(t, booking.Mars, d.Selection().Destination)
}

func TestDesk_TravelersAndClassCoercion(t *testing.T) {
	t.Parallel()
	d := newTestDesk(t)

	for _, raw := range []string{"", "0", "-3", "abc"} {
		d.SetTravelers(raw)
		assert.Equal(t, 1, d.Selection().Travelers, "raw %q", raw)
	}
	d.SetClass("first")
	assert.Equal(t, booking.Standard, d.Selection().Class)
}

func TestDesk_SubmitIncomplete(t *testing.T) {
	t.Parallel()
	d := newTestDesk(t)
	require.NoError(t, d.SetDestination("mars"))

	_, err := d.Submit()
	require.ErrorIs(t, err, ErrIncompleteBooking)
	assert.Equal(t, booking.Mars, d.Selection().Destination, "state kept on refusal")
}

func TestDesk_SubmitConfirmsAndResets(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.InfoLevel)
	path := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := telemetry.NewEmitter(path)
	require.NoError(t, err)

	d := newTestDesk(t, WithLogger(zap.New(core)), WithTelemetry(em))
	require.NoError(t, d.SetDestination("mars"))
	pickRange(t, d, booking.NewDate(2025, time.March, 1), booking.NewDate(2025, time.March, 4))
	d.SetTravelers("2")
	d.SetClass("luxury")

	c, err := d.Submit()
	require.NoError(t, err)
	assert.Equal(t, "ref-test", c.Reference)
	assert.Equal(t, "Mars Haven", c.DestinationName)
	assert.Equal(t, 3, c.Nights)
	assert.Equal(t, 2, c.Travelers)
	assert.Equal(t, booking.Luxury, c.Class)
	assert.Equal(t, "$18,000", c.TotalDisplay())

	sel := d.Selection()
	assert.True(t, sel.CheckIn.IsZero())
	assert.True(t, sel.CheckOut.IsZero())
	assert.Equal(t, booking.DestinationNone, sel.Destination)
	assert.Equal(t, 1, sel.Travelers)
	assert.Equal(t, booking.Standard, sel.Class)
	assert.Equal(t, "$0", d.Quote().Display())
	assert.Equal(t, calendar.StateIdle, d.Picker().State())

	entries := logs.FilterMessage("booking confirmed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ref-test", entries[0].ContextMap()["ref"])

	require.NoError(t, em.Close())
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	var kinds []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var evt telemetry.Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &evt))
		kinds = append(kinds, evt.Kind)
	}
	assert.Contains(t, kinds, telemetry.KindQuote)
	assert.Contains(t, kinds, telemetry.KindBookingDone)
}

func TestDesk_SetCatalogReprices(t *testing.T) {
	t.Parallel()
	d := newTestDesk(t)
	require.NoError(t, d.SetDestination("luna"))
	pickRange(t, d, booking.NewDate(2025, time.March, 1), booking.NewDate(2025, time.March, 2))
	require.Equal(t, "$1,200", d.Quote().Display())

	cheaper, err := catalog.Parse([]byte(`
[classes]
standard = 1.0
luxury = 1.5
elite = 2.25

[destinations.luna]
name = "Luna Suites"
price = 999.5

[destinations.mars]
name = "Mars Haven"
price = 2000.0

[destinations.orbit]
name = "Orbital Resort"
price = 3500.0
`))
	require.NoError(t, err)

	d.SetCatalog(cheaper)
	assert.Equal(t, "$999.50", d.Quote().Display())
	d.SetCatalog(nil)
	assert.Same(t, cheaper, d.Catalog())
}
