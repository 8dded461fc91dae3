package domain

import "time"

// BookingMode defines the guest-facing booking flow
type BookingMode string

const (
	// ModeCheckAvailability: guest requests produce an Inquiry for the owner to handle
	ModeCheckAvailability BookingMode = "check_availability"
	// ModeInstantBooking: guest requests immediately produce a Booking (hold or confirmed)
	ModeInstantBooking BookingMode = "instant_booking"
)

// Plan is the subscription tier of the property owner
type Plan string

const (
	PlanBasic Plan = "basic"
	PlanPro   Plan = "pro"
)

// PropertyConfig is the pricing and booking policy of the property.
// Owned by the listing collaborator; read-only for this service.
type PropertyConfig struct {
	ID   int64
	Name string

	BasePrice   int64   // nightly price, whole currency units
	CleaningFee int64   // flat fee added once per stay
	MinNights   int
	WeekendMult float64 // multiplier for Thursday/Friday nights

	BookingMode         BookingMode
	HoldMinutes         int
	AllowInstantConfirm bool
	Plan                Plan

	WhatsApp string // contact handle for notification payloads

	Holidays HolidayTable

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoldDuration returns the hold lifetime as a time.Duration
func (p *PropertyConfig) HoldDuration() time.Duration {
	return time.Duration(p.HoldMinutes) * time.Minute
}

// CanInstantBook returns true if the instant-booking flow is available.
// Instant booking is a pro-plan capability.
func (p *PropertyConfig) CanInstantBook() bool {
	return p.Plan == PlanPro && p.BookingMode == ModeInstantBooking
}

// CanSyncCalendars returns true if external calendar sync is available.
// Calendar import is a pro-plan capability.
func (p *PropertyConfig) CanSyncCalendars() bool {
	return p.Plan == PlanPro
}
