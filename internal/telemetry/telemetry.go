// Package telemetry records booking-session events as JSONL: quotes that
// reach a price, confirmations, rejected submissions, contact messages and
// catalog reloads. One line per event makes a session easy to replay or
// grep. A nil *Emitter is a valid no-op emitter.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds.
const (
	KindSessionStart    = "session_start"
	KindSessionEnd      = "session_end"
	KindQuote           = "quote"
	KindBookingDone     = "booking_confirmed"
	KindBookingRejected = "booking_rejected"
	KindContactSent     = "contact_sent"
	KindCatalogReloaded = "catalog_reloaded"
)

// Event is a single telemetry record.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Session   string    `json:"session,omitempty"`
	Reference string    `json:"ref,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes events to a JSONL file. It is safe for concurrent use; the
// catalog watcher goroutine and the UI loop may both emit.
type Emitter struct {
	file    *os.File
	enc     *json.Encoder
	mu      sync.Mutex
	session string
	now     func() time.Time
}

// NewEmitter opens (or creates) the JSONL file at path for appending and
// tags every event with a fresh session id.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:    f,
		enc:     json.NewEncoder(f),
		session: uuid.NewString(),
		now:     time.Now,
	}, nil
}

// Session returns the id stamped on this emitter's events.
func (e *Emitter) Session() string {
	if e == nil {
		return ""
	}
	return e.session
}

// Emit writes evt, filling in the timestamp and session when unset.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now()
	}
	if evt.Session == "" {
		evt.Session = e.session
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Record is shorthand for Emit with only a kind, reference and payload.
func (e *Emitter) Record(kind, ref string, data any) error {
	return e.Emit(Event{Kind: kind, Reference: ref, Data: data})
}

// Close closes the underlying file.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
