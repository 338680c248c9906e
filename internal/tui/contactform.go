package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/papapumpkin/astrostay/internal/contact"
)

// ContactField is a row of the contact form.
type ContactField int

// Contact form rows, top to bottom.
const (
	ContactName ContactField = iota
	ContactEmail
	ContactMessage
	ContactSend
	contactFieldCount
)

// ContactForm collects a name, email and message. After a valid submit the
// button reads "Message Sent!" until the reset timer clears the form.
type ContactForm struct {
	Focus ContactField
	Name  textinput.Model
	Email textinput.Model
	Body  textarea.Model
	Sent  bool
	seq   int
}

// NewContactForm creates an empty form.
func NewContactForm() ContactForm {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Your name"
	name.CharLimit = 80
	name.Width = 40

	email := textinput.New()
	email.Prompt = ""
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Width = 40

	body := textarea.New()
	body.Placeholder = "Tell us about your dream getaway"
	body.ShowLineNumbers = false
	body.SetWidth(48)
	body.SetHeight(4)
	body.CharLimit = 2000

	f := ContactForm{Name: name, Email: email, Body: body}
	f.applyFocus()
	return f
}

// MoveFocus moves the focused row by delta, clamped to the form.
func (f *ContactForm) MoveFocus(delta int) {
	f.Focus = ContactField(min(max(int(f.Focus)+delta, 0), int(contactFieldCount)-1))
	f.applyFocus()
}

func (f *ContactForm) applyFocus() {
	f.Name.Blur()
	f.Email.Blur()
	f.Body.Blur()
	switch f.Focus {
	case ContactName:
		f.Name.Focus()
	case ContactEmail:
		f.Email.Focus()
	case ContactMessage:
		f.Body.Focus()
	}
}

// EditingText reports whether key presses go to a text field.
func (f ContactForm) EditingText() bool {
	return f.Focus != ContactSend
}

// Message returns the form contents.
func (f ContactForm) Message() contact.Message {
	return contact.Message{
		Name:  f.Name.Value(),
		Email: f.Email.Value(),
		Body:  f.Body.Value(),
	}.Normalized()
}

// MarkSent switches the button to the acknowledgement and returns the
// sequence number the reset timer must carry.
func (f *ContactForm) MarkSent() int {
	f.seq++
	f.Sent = true
	return f.seq
}

// Reset clears the form if seq is still current. It reports whether it did.
func (f *ContactForm) Reset(seq int) bool {
	if seq != f.seq || !f.Sent {
		return false
	}
	f.Sent = false
	f.Name.Reset()
	f.Email.Reset()
	f.Body.Reset()
	f.Focus = ContactName
	f.applyFocus()
	return true
}

// View renders the form.
func (f ContactForm) View() string {
	var b strings.Builder
	b.WriteString(styleDetailTitle.Render("Contact Us"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("Questions about your journey? Our concierge team is standing by."))
	b.WriteString("\n\n")

	b.WriteString(f.row(ContactName, "Name", f.Name.View()))
	b.WriteString("\n")
	b.WriteString(f.row(ContactEmail, "Email", f.Email.View()))
	b.WriteString("\n")
	b.WriteString(f.row(ContactMessage, "Message", ""))
	b.WriteString("\n")
	b.WriteString(indentLines(f.Body.View(), "    "))
	b.WriteString("\n\n  ")

	switch {
	case f.Sent:
		b.WriteString(styleButtonSent.Render(contact.SentLabel))
	case f.Focus == ContactSend:
		b.WriteString(styleButtonFocused.Render("Send Message"))
	default:
		b.WriteString(styleButton.Render("Send Message"))
	}
	return b.String()
}

func (f ContactForm) row(field ContactField, label, value string) string {
	indicator := "  "
	labelStyle := styleFieldLabel
	if f.Focus == field {
		indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
		labelStyle = labelStyle.Inherit(styleRowSelected)
	}
	return indicator + labelStyle.Render(label) + value
}

func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
