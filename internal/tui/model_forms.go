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
	"github.com/papapumpkin/astrostay/internal/telemetry"
)

func (m AppModel) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.Desk.Picker()
	km := m.Keys
	switch {
	case key.Matches(msg, km.Back):
		p.Close()
	case key.Matches(msg, km.Left):
		m.Calendar.Move(p, -1)
	case key.Matches(msg, km.Right):
		m.Calendar.Move(p, 1)
	case key.Matches(msg, km.Up):
		m.Calendar.Move(p, -calendar.Columns)
	case key.Matches(msg, km.Down):
		m.Calendar.Move(p, calendar.Columns)
	case key.Matches(msg, km.PrevMonth):
		m.Calendar.Navigate(p, -1)
	case key.Matches(msg, km.NextMonth):
		m.Calendar.Navigate(p, 1)
	case key.Matches(msg, km.Clear):
		p.Clear()
	case key.Matches(msg, km.NextTab):
		other := booking.FieldCheckOut
		if p.Focus() == booking.FieldCheckOut {
			other = booking.FieldCheckIn
		}
		p.Open(other)
		m.Calendar.Reset(p, m.Desk.Selection())
	case key.Matches(msg, km.Enter):
		res, err := p.SelectDay(m.Calendar.Day)
		if err != nil {
			m.logger.Debug("date rejected", zap.Stringer("date", m.Calendar.Day), zap.Error(err))
			return m.toast(validationMessage(err), true)
		}
		if res.Closed {
			m.Booking.Focus = FieldTravelers
			m.Booking.MoveFocus(0)
		}
		if res.Advance != 0 {
			token := res.Advance
			return m, tea.Tick(m.advanceDelay, func(time.Time) tea.Msg {
				return MsgAdvance{Token: token}
			})
		}
	}
	return m, nil
}

// validationMessage turns a picker error into the sentence shown to the user.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, calendar.ErrCheckoutNotAfterCheckin):
		return "Check-out date must be after check-in date"
	case errors.Is(err, calendar.ErrPastDate):
		return "Please choose a date from today onwards"
	}
	return err.Error()
}

// calendarOpen reports whether the date picker overlay is showing.
func (m AppModel) calendarOpen() bool {
	return m.Desk.Picker().IsOpen()
}

// --- Contact ---

func (m AppModel) handleContactKey(msg tea.KeyMsg, km KeyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, km.Up):
		m.Contact.MoveFocus(-1)
		return m, nil
	case key.Matches(msg, km.Down):
		m.Contact.MoveFocus(1)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Contact.Focus {
	case ContactName, ContactEmail:
		if key.Matches(msg, km.Enter) {
			m.Contact.MoveFocus(1)
			return m, nil
		}
		if m.Contact.Focus == ContactName {
			m.Contact.Name, cmd = m.Contact.Name.Update(msg)
		} else {
			m.Contact.Email, cmd = m.Contact.Email.Update(msg)
		}
	case ContactMessage:
		m.Contact.Body, cmd = m.Contact.Body.Update(msg)
	case ContactSend:
		if key.Matches(msg, km.Enter) && !m.Contact.Sent {
			return m.sendContact()
		}
	}
	return m, cmd
}

func (m AppModel) sendContact() (tea.Model, tea.Cmd) {
	msg := m.Contact.Message()
	if err := msg.Validate(); err != nil {
		text := "Please fill in all fields"
		if !errors.Is(err, contact.ErrMissingField) && errors.Is(err, contact.ErrInvalidEmail) {
			text = "Please enter a valid email address"
		}
		return m.toast(text, true)
	}

	m.logger.Info("contact form submitted",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.Int("message_len", len(msg.Body)),
	)
	_ = m.events.Record(telemetry.KindContactSent, "", map[string]any{
		"email":       msg.Email,
		"message_len": len(msg.Body),
	})

	seq := m.Contact.MarkSent()
	return m, tea.Tick(m.resetDelay, func(time.Time) tea.Msg {
		return MsgContactReset{Seq: seq}
	})
}
