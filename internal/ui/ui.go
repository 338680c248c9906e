package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/papapumpkin/astrostay/internal/ansi"
	"github.com/papapumpkin/astrostay/internal/booking"
	"github.com/papapumpkin/astrostay/internal/calendar"
	"github.com/papapumpkin/astrostay/internal/catalog"
	"github.com/papapumpkin/astrostay/internal/pricing"
	"github.com/papapumpkin/astrostay/internal/reservation"
)

// Printer writes human-readable CLI output.
type Printer struct {
	w io.Writer
}

// New returns a printer writing to stderr.
func New() *Printer {
	return &Printer{w: os.Stderr}
}

// NewWriter returns a printer writing to w.
func NewWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner prints the boxed product header.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, ansi.Bold+ansi.Cyan+"  ╔═══════════════════════════════════╗"+ansi.Reset)
	fmt.Fprintln(p.w, ansi.Bold+ansi.Cyan+"  ║"+ansi.Reset+ansi.Bold+"   ASTROSTAY  "+ansi.Dim+"stays beyond Earth"+ansi.Reset+ansi.Bold+ansi.Cyan+"   ║"+ansi.Reset)
	fmt.Fprintln(p.w, ansi.Bold+ansi.Cyan+"  ╚═══════════════════════════════════╝"+ansi.Reset)
	fmt.Fprintln(p.w)
}

// Error prints msg as an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// Quote prints the price breakdown. A zero quote prints "$0" with a hint
// about what is missing.
func (p *Printer) Quote(in pricing.Input, q pricing.Quote, destName string) {
	if q.IsZero() {
		fmt.Fprintf(p.w, ansi.Yellow+ansi.Bold+"total: $0"+ansi.Reset+" %s\n", ansi.Paint("(incomplete: "+missing(in)+")", ansi.Dim))
		return
	}
	fmt.Fprintf(p.w, ansi.Bold+ansi.Cyan+"%s"+ansi.Reset+"\n", destName)
	fmt.Fprintf(p.w, "  check-in:    %s\n", in.CheckIn.Display())
	fmt.Fprintf(p.w, "  check-out:   %s\n", in.CheckOut.Display())
	fmt.Fprintf(p.w, "  nights:      %d\n", q.Nights)
	fmt.Fprintf(p.w, "  travelers:   %d\n", q.Travelers)
	fmt.Fprintf(p.w, "  class:       %s (×%s)\n", q.Class, q.Multiplier.String())
	fmt.Fprintf(p.w, "  per night:   %s\n", pricing.FormatMoney(q.BasePrice))
	fmt.Fprintf(p.w, ansi.Green+ansi.Bold+"  total:       %s"+ansi.Reset+"\n", q.Display())
}

func missing(in pricing.Input) string {
	var parts []string
	if in.Destination == booking.DestinationNone {
		parts = append(parts, "destination")
	}
	if in.CheckIn.IsZero() {
		parts = append(parts, "check-in")
	}
	if in.CheckOut.IsZero() {
		parts = append(parts, "check-out")
	}
	if len(parts) == 0 {
		return "check-out must be after check-in"
	}
	return "missing " + strings.Join(parts, ", ")
}

// Confirmation prints a completed booking.
func (p *Printer) Confirmation(c reservation.Confirmation) {
	fmt.Fprintln(p.w, ansi.Green+ansi.Bold+"✓ Booking Confirmed!"+ansi.Reset)
	fmt.Fprintln(p.w, "  Thank you for choosing AstroStay. Your reservation has been processed.")
	fmt.Fprintf(p.w, "  reference:   %s\n", c.Reference)
	fmt.Fprintf(p.w, "  destination: %s\n", c.DestinationName)
	fmt.Fprintf(p.w, "  stay:        %s → %s (%d nights)\n", c.CheckIn.Display(), c.CheckOut.Display(), c.Nights)
	fmt.Fprintf(p.w, "  travelers:   %d, %s class\n", c.Travelers, c.Class)
	fmt.Fprintf(p.w, ansi.Bold+"  total:       %s"+ansi.Reset+"\n", c.TotalDisplay())
}

// Calendar prints one month grid. Past days are dimmed, the selected ends
// are reversed, days in range are cyan and today is underlined.
func (p *Printer) Calendar(m booking.Month, cells []calendar.Cell) {
	title := m.String()
	width := calendar.Columns*3 - 1
	pad := max((width-len(title))/2, 0)
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", pad), ansi.Paint(title, ansi.Bold))

	heads := make([]string, len(calendar.Weekdays))
	for i, wd := range calendar.Weekdays {
		heads[i] = fmt.Sprintf("%2s", wd[:2])
	}
	fmt.Fprintln(p.w, ansi.Paint(strings.Join(heads, " "), ansi.Dim))

	for _, week := range calendar.Weeks(cells) {
		row := make([]string, len(week))
		for i, c := range week {
			row[i] = cellText(c)
		}
		fmt.Fprintln(p.w, strings.Join(row, " "))
	}
}

func cellText(c calendar.Cell) string {
	if c.State == calendar.CellBlank {
		return "  "
	}
	s := fmt.Sprintf("%2d", c.Day)
	var codes []string
	switch c.State {
	case calendar.CellPast:
		codes = append(codes, ansi.Dim)
	case calendar.CellSelectedStart, calendar.CellSelectedEnd:
		codes = append(codes, ansi.Reverse, ansi.Green, ansi.Bold)
	case calendar.CellInRange:
		codes = append(codes, ansi.Cyan)
	case calendar.CellToday:
		codes = append(codes, ansi.Yellow, ansi.Bold)
	}
	if c.IsToday {
		codes = append(codes, ansi.Underline)
	}
	return ansi.Paint(s, codes...)
}

// Destinations prints the catalog as a short list.
func (p *Printer) Destinations(list []catalog.Destination) {
	for _, d := range list {
		fmt.Fprintf(p.w, ansi.Bold+ansi.Cyan+"%-8s"+ansi.Reset+" %-16s %10s/night  "+ansi.Dim+"%s"+ansi.Reset+"\n",
			d.Key, d.Name, pricing.FormatMoney(d.PricePerNight()), d.Tagline)
	}
}

// Destination prints every detail of one catalog entry.
func (p *Printer) Destination(d catalog.Destination) {
	fmt.Fprintf(p.w, ansi.Bold+ansi.Cyan+"%s"+ansi.Reset+"\n", d.Name)
	if d.Tagline != "" {
		fmt.Fprintln(p.w, ansi.Paint(d.Tagline, ansi.Dim))
	}
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "  price:        %s per night\n", pricing.FormatMoney(d.PricePerNight()))
	fmt.Fprintf(p.w, "  travel time:  %s\n", d.TravelTime)
	fmt.Fprintf(p.w, "  best time:    %s\n", d.BestTime)
	fmt.Fprintf(p.w, "  capacity:     %s\n", d.Capacity)
	fmt.Fprintf(p.w, "  rating:       %s\n", d.Rating)
	if d.Description != "" {
		fmt.Fprintf(p.w, "\n%s\n", d.Description)
	}
	p.list("Features", d.Features)
	p.list("Amenities", d.Amenities)
	if len(d.Experiences) > 0 {
		fmt.Fprintln(p.w, "\n"+ansi.Bold+"Experiences"+ansi.Reset)
		for _, e := range d.Experiences {
			fmt.Fprintf(p.w, "  "+ansi.Magenta+"◆ %s"+ansi.Reset+" %s\n", e.Title, e.Description)
		}
	}
}

func (p *Printer) list(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(p.w, "\n"+ansi.Bold+title+ansi.Reset)
	for _, it := range items {
		fmt.Fprintf(p.w, "  "+ansi.Cyan+"•"+ansi.Reset+" %s\n", it)
	}
}
