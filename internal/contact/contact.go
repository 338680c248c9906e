// Package contact validates messages from the contact form. There is no
// backend: a valid message is logged and acknowledged locally.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validation errors.
var (
	ErrMissingField = errors.New("required field is empty")
	ErrInvalidEmail = errors.New("invalid email address")
)

// ResetDelay is how long the "Message Sent!" acknowledgement stays up before
// the form clears.
const ResetDelay = 2 * time.Second

// SentLabel replaces the submit label while the acknowledgement shows.
const SentLabel = "Message Sent!"

// Message is a submitted contact form.
type Message struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Body  string `validate:"required"`
}

// validate is shared so struct tags are parsed once.
var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldLabels names fields the way the form labels them.
var fieldLabels = map[string]string{
	"Name":  "name",
	"Email": "email",
	"Body":  "message",
}

// Validate checks that every field is filled in and the email is a bare
// address. Surrounding whitespace is ignored. All problems are reported
// together.
func (m Message) Validate() error {
	n := m.Normalized()
	err := validate.Struct(n)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("contact: validate: %w", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		label := fieldLabels[fe.StructField()]
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Errorf("%s: %w", label, ErrMissingField))
		case "email":
			errs = append(errs, fmt.Errorf("%s %q: %w", label, n.Email, ErrInvalidEmail))
		default:
			errs = append(errs, fmt.Errorf("%s: failed %s", label, fe.Tag()))
		}
	}
	return errors.Join(errs...)
}

// Normalized returns the message with surrounding whitespace trimmed.
func (m Message) Normalized() Message {
	return Message{
		Name:  strings.TrimSpace(m.Name),
		Email: strings.TrimSpace(m.Email),
		Body:  strings.TrimSpace(m.Body),
	}
}
