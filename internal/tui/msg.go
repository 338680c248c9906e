package tui

import (
	"time"

	"github.com/papapumpkin/astrostay/internal/catalog"
)

// MsgAdvance fires AdvanceDelay after a check-in pick. Token identifies the
// pick; the picker ignores tokens it has since superseded.
type MsgAdvance struct {
	Token int
}

// MsgFocusBooking fires after booking from the destination detail view and
// moves the page to the booking form. Seq discards stale timers.
type MsgFocusBooking struct {
	Seq int
}

// MsgContactReset clears the contact form after the "Message Sent!"
// acknowledgement has been shown.
type MsgContactReset struct {
	Seq int
}

// MsgToastExpired removes the toast with the given ID.
type MsgToastExpired struct {
	ID int
}

// MsgCatalogReload carries the result of re-reading the catalog override
// file. Err is set when the new file did not validate; the old catalog stays.
type MsgCatalogReload struct {
	Catalog *catalog.Catalog
	Err     error
}

// MsgStarTick advances the starfield by one frame.
type MsgStarTick time.Time
