package domain

import (
	"time"

	"github.com/saltylife/SL-RentalService/pkg/types"
)

// ConnectionStatus represents the sync state of an external calendar connection
type ConnectionStatus string

const (
	ConnectionConnected ConnectionStatus = "connected"
	ConnectionSyncing   ConnectionStatus = "syncing"
	ConnectionError     ConnectionStatus = "error"
)

// CalendarConnection is a one-way import link to an external channel
// calendar (iCal feed). Imported dates are replaced wholesale on every
// successful sync; a failed sync leaves them untouched.
type CalendarConnection struct {
	ID            string
	Platform      string // Airbnb, Booking.com, Other
	URL           string
	Status        ConnectionStatus
	LastSyncAt    *time.Time
	ImportedDates []types.DateString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlockedDate is a single manually blocked calendar day
type BlockedDate struct {
	Date      types.DateString
	CreatedAt time.Time
}
