package tui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/astrostay/internal/reservation"
)

// ConfirmationOverlay shows a completed booking until dismissed.
type ConfirmationOverlay struct {
	Confirmation reservation.Confirmation
}

// View renders the confirmation box.
func (o ConfirmationOverlay) View() string {
	c := o.Confirmation
	var b strings.Builder
	b.WriteString(styleOverlayTitle.Foreground(colorSuccess).Render("✓ Booking Confirmed!"))
	b.WriteString("\n\n")
	b.WriteString("Thank you for choosing AstroStay.\nYour reservation has been processed.\n\n")

	rows := [][2]string{
		{"Reference", c.Reference},
		{"Destination", c.DestinationName},
		{"Check-in", c.CheckIn.Display()},
		{"Check-out", c.CheckOut.Display()},
		{"Nights", fmt.Sprintf("%d", c.Nights)},
		{"Travelers", fmt.Sprintf("%d", c.Travelers)},
		{"Class", string(c.Class)},
	}
	for _, r := range rows {
		b.WriteString(styleFieldLabel.Render(r[0]))
		b.WriteString(styleFieldValue.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString(styleFieldLabel.Render("Total"))
	b.WriteString(stylePrice.Render(c.TotalDisplay()))
	b.WriteString("\n\n")
	b.WriteString(styleOverlayHint.Render("We'll send you a confirmation email shortly."))
	b.WriteString("\n")
	b.WriteString(styleOverlayHint.Render("enter/esc: close"))
	return styleOverlaySuccess.Render(b.String())
}

// Toast represents a brief notification displayed at the bottom of the screen.
type Toast struct {
	ID      int
	Message string
	IsError bool
}

// toastDismissDelay is how long a toast stays visible.
const toastDismissDelay = 4 * time.Second

// nextToastID is an atomic counter for toast IDs, safe for concurrent use in tests.
var nextToastID atomic.Int32

// NewToast creates a new toast notification and returns it along with
// a tea.Cmd that will fire MsgToastExpired after the dismiss delay.
func NewToast(message string, isError bool) (Toast, tea.Cmd) {
	id := int(nextToastID.Add(1))
	t := Toast{
		ID:      id,
		Message: message,
		IsError: isError,
	}
	cmd := tea.Tick(toastDismissDelay, func(_ time.Time) tea.Msg {
		return MsgToastExpired{ID: id}
	})
	return t, cmd
}

// RenderToasts renders the toast stack at the bottom of the screen.
func RenderToasts(toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		msg := t.Message
		if width > 4 {
			msg = TruncateWithEllipsis(msg, width-4)
		}
		style := styleToast
		if t.IsError {
			style = styleToastError
		}
		lines = append(lines, style.Width(width).Render(msg))
	}
	return strings.Join(lines, "\n")
}

// removeToast filters out the toast with the given ID.
func removeToast(toasts []Toast, id int) []Toast {
	result := make([]Toast, 0, len(toasts))
	for _, t := range toasts {
		if t.ID != id {
			result = append(result, t)
		}
	}
	return result
}
