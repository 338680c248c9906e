package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/papapumpkin/astrostay/internal/booking"
	"github.com/papapumpkin/astrostay/internal/calendar"
	"github.com/papapumpkin/astrostay/internal/contact"
	"github.com/papapumpkin/astrostay/internal/reservation"
	"github.com/papapumpkin/astrostay/internal/telemetry"
)

// Section is a page of the app, selected with tab.
type Section int

const (
	// SectionDestinations lists the catalog.
	SectionDestinations Section = iota
	// SectionBooking is the booking widget.
	SectionBooking
	// SectionContact is the contact form.
	SectionContact
	sectionCount
)

var sectionTitles = [sectionCount]string{"Destinations", "Book", "Contact"}

// Options wires the model to the rest of the app.
type Options struct {
	Desk              *reservation.Desk
	Logger            *zap.Logger
	Telemetry         *telemetry.Emitter
	AdvanceDelay      time.Duration
	ContactResetDelay time.Duration
	// Starfield is nil when the background animation is disabled.
	Starfield *Starfield
}

// AppModel is the root BubbleTea model composing all sub-views.
type AppModel struct {
	Desk       *reservation.Desk
	Keys       KeyMap
	Section    Section
	DestCursor int
	Booking    BookingForm
	Contact    ContactForm
	Calendar   CalendarView
	Modal      *DestinationModal
	Confirm    *ConfirmationOverlay
	Toasts     []Toast
	Stars      *Starfield
	Width      int
	Height     int

	advanceDelay time.Duration
	resetDelay   time.Duration
	focusSeq     int
	logger       *zap.Logger
	events       *telemetry.Emitter
}

// NewAppModel creates the root model.
func NewAppModel(opts Options) AppModel {
	if opts.Desk == nil {
		opts.Desk = reservation.NewDesk()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.AdvanceDelay < 0 {
		opts.AdvanceDelay = calendar.AdvanceDelay
	}
	if opts.ContactResetDelay < 0 {
		opts.ContactResetDelay = contact.ResetDelay
	}
	return AppModel{
		Desk:         opts.Desk,
		Keys:         DefaultKeyMap(),
		Booking:      NewBookingForm(),
		Contact:      NewContactForm(),
		Stars:        opts.Starfield,
		advanceDelay: opts.AdvanceDelay,
		resetDelay:   opts.ContactResetDelay,
		logger:       opts.Logger,
		events:       opts.Telemetry,
	}
}

// Init starts the starfield clock.
func (m AppModel) Init() tea.Cmd {
	if m.Stars != nil {
		return m.Stars.Tick()
	}
	return nil
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.Stars != nil {
			m.Stars.Resize(msg.Width, SkyHeight)
		}
		if m.Modal != nil {
			m.Modal.Resize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgStarTick:
		if m.Stars != nil {
			m.Stars.Step()
			return m, m.Stars.Tick()
		}

	case MsgAdvance:
		p := m.Desk.Picker()
		if p.Advance(msg.Token) && p.IsOpen() {
			m.Calendar.Sync(p, m.Desk.Selection())
		}

	case MsgFocusBooking:
		if msg.Seq == m.focusSeq {
			m.Section = SectionBooking
			m.Booking.Focus = FieldCheckIn
			m.Booking.MoveFocus(0)
		}

	case MsgContactReset:
		m.Contact.Reset(msg.Seq)

	case MsgToastExpired:
		m.Toasts = removeToast(m.Toasts, msg.ID)

	case MsgCatalogReload:
		return m.handleCatalogReload(msg)
	}
	return m, nil
}

func (m AppModel) handleCatalogReload(msg MsgCatalogReload) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("catalog reload rejected", zap.Error(msg.Err))
		return m.toast("Catalog not reloaded: "+firstLine(msg.Err.Error()), true)
	}
	m.Desk.SetCatalog(msg.Catalog)
	_ = m.events.Record(telemetry.KindCatalogReloaded, "", nil)
	if m.Modal != nil {
		if d, ok := msg.Catalog.Destination(m.Modal.Destination.Key); ok {
			m.Modal = NewDestinationModal(d, m.Width, m.Height)
		}
	}
	return m.toast("Catalog reloaded", false)
}

func (m AppModel) toast(message string, isError bool) (AppModel, tea.Cmd) {
	t, cmd := NewToast(message, isError)
	m.Toasts = append(m.Toasts, t)
	return m, cmd
}

// activeKeys returns the key map for the current focus: text fields own the
// letter keys.
func (m AppModel) activeKeys() KeyMap {
	if m.calendarOpen() || m.Modal != nil || m.Confirm != nil {
		return m.Keys
	}
	switch {
	case m.Section == SectionBooking && m.Booking.EditingText(),
		m.Section == SectionContact && m.Contact.EditingText():
		return TextKeyMap()
	}
	return m.Keys
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch {
	case m.Confirm != nil:
		if key.Matches(msg, m.Keys.Enter, m.Keys.Back) {
			m.Confirm = nil
		}
		return m, nil
	case m.calendarOpen():
		return m.handleCalendarKey(msg)
	case m.Modal != nil:
		return m.handleModalKey(msg)
	}

	km := m.activeKeys()
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.NextTab):
		m.setSection((m.Section + 1) % sectionCount)
		return m, nil
	case key.Matches(msg, km.PrevTab):
		m.setSection((m.Section + sectionCount - 1) % sectionCount)
		return m, nil
	}

	switch m.Section {
	case SectionBooking:
		return m.handleBookingKey(msg, km)
	case SectionContact:
		return m.handleContactKey(msg, km)
	default:
		return m.handleDestinationsKey(msg, km)
	}
}

func (m *AppModel) setSection(s Section) {
	m.Section = s
	m.Booking.MoveFocus(0)
	if s != SectionBooking {
		m.Booking.Travelers.Blur()
	}
	if s == SectionContact {
		m.Contact.MoveFocus(0)
	} else {
		m.Contact.Name.Blur()
		m.Contact.Email.Blur()
		m.Contact.Body.Blur()
	}
}

// --- Destinations ---

func (m AppModel) handleDestinationsKey(msg tea.KeyMsg, km KeyMap) (tea.Model, tea.Cmd) {
	list := m.Desk.Catalog().List()
	switch {
	case key.Matches(msg, km.Up):
		m.DestCursor = max(m.DestCursor-1, 0)
	case key.Matches(msg, km.Down):
		m.DestCursor = min(m.DestCursor+1, len(list)-1)
	case key.Matches(msg, km.Enter):
		if m.DestCursor < len(list) {
			m.Modal = NewDestinationModal(list[m.DestCursor], m.Width, m.Height)
		}
	case key.Matches(msg, km.Book):
		if m.DestCursor < len(list) {
			return m.bookFrom(list[m.DestCursor].Key)
		}
	}
	return m, nil
}

func (m AppModel) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.Modal = nil
	case key.Matches(msg, m.Keys.Book):
		return m.bookFrom(m.Modal.Destination.Key)
	default:
		m.Modal.Panel.Update(msg)
	}
	return m, nil
}

// bookFrom pre-fills the destination, closes the detail view and moves to
// the booking form once the UX delay has passed.
func (m AppModel) bookFrom(dest booking.Destination) (tea.Model, tea.Cmd) {
	if err := m.Desk.BookFromDestination(string(dest)); err != nil {
		return m.toast(err.Error(), true)
	}
	m.Modal = nil
	m.focusSeq++
	seq := m.focusSeq
	return m, tea.Tick(m.advanceDelay, func(time.Time) tea.Msg {
		return MsgFocusBooking{Seq: seq}
	})
}

// --- Booking ---

func (m AppModel) handleBookingKey(msg tea.KeyMsg, km KeyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, km.Up):
		m.Booking.MoveFocus(-1)
		return m, nil
	case key.Matches(msg, km.Down):
		m.Booking.MoveFocus(1)
		return m, nil
	}

	switch m.Booking.Focus {
	case FieldDestination:
		delta := 0
		switch {
		case key.Matches(msg, km.Left):
			delta = -1
		case key.Matches(msg, km.Right), key.Matches(msg, km.Enter):
			delta = 1
		case key.Matches(msg, km.Clear):
			_ = m.Desk.SetDestination("")
			return m, nil
		}
		if delta != 0 {
			next := cycleDestination(m.Desk.Selection().Destination, delta, m.Desk.Catalog().Keys())
			if err := m.Desk.SetDestination(string(next)); err != nil {
				return m.toast(err.Error(), true)
			}
		}

	case FieldCheckIn, FieldCheckOut:
		field := booking.FieldCheckIn
		if m.Booking.Focus == FieldCheckOut {
			field = booking.FieldCheckOut
		}
		switch {
		case key.Matches(msg, km.Enter):
			p := m.Desk.Picker()
			p.Open(field)
			m.Calendar.Reset(p, m.Desk.Selection())
		case key.Matches(msg, km.Clear):
			_ = m.Desk.Picker().Enter(field, booking.Date{})
		}

	case FieldTravelers:
		if key.Matches(msg, km.Enter) {
			m.Booking.MoveFocus(1)
			return m, nil
		}
		var cmd tea.Cmd
		m.Booking.Travelers, cmd = m.Booking.Travelers.Update(msg)
		if clean := sanitizeTravelers(m.Booking.Travelers.Value()); clean != m.Booking.Travelers.Value() {
			m.Booking.Travelers.SetValue(clean)
		}
		m.Desk.SetTravelers(m.Booking.travelersText())
		return m, cmd

	case FieldClass:
		switch {
		case key.Matches(msg, km.Left):
			m.Desk.SetClass(string(cycleClass(m.Desk.Selection().Class, -1)))
		case key.Matches(msg, km.Right), key.Matches(msg, km.Enter):
			m.Desk.SetClass(string(cycleClass(m.Desk.Selection().Class, 1)))
		}

	case FieldConfirm:
		if key.Matches(msg, km.Enter) {
			return m.submitBooking()
		}
	}
	return m, nil
}

func (m AppModel) submitBooking() (tea.Model, tea.Cmd) {
	c, err := m.Desk.Submit()
	if err != nil {
		if errors.Is(err, reservation.ErrIncompleteBooking) {
			return m.toast("Please fill in all fields correctly to calculate your booking price.", true)
		}
		return m.toast(err.Error(), true)
	}
	m.Confirm = &ConfirmationOverlay{Confirmation: c}
	m.Booking.Reset()
	return m, nil
}
