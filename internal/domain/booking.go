package domain

import (
	"time"

	"github.com/saltylife/SL-RentalService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusHold      BookingStatus = "hold"
	StatusExpired   BookingStatus = "expired"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingSource represents the channel a booking came from
type BookingSource string

const (
	SourceDirect  BookingSource = "direct"
	SourceAirbnb  BookingSource = "airbnb"
	SourceBooking BookingSource = "booking"
)

// Booking represents a stay reservation for the property.
// CheckIn/CheckOut form a half-open range [checkIn, checkOut): the guest
// does not occupy (or pay for) the departure day.
type Booking struct {
	ID        string
	GuestName string
	Phone     *string
	Email     *string

	CheckIn  types.DateString
	CheckOut types.DateString
	Guests   int
	Nights   int   // derived: checkOut - checkIn in days
	Total    int64 // derived at creation, immutable afterwards

	Status        BookingStatus
	Source        BookingSource
	HoldExpiresAt *time.Time // present iff Status is hold

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsHoldExpired returns true if the booking is a hold whose expiry instant has passed
func (b *Booking) IsHoldExpired(now time.Time) bool {
	return b.Status == StatusHold && b.HoldExpiresAt != nil && !now.Before(*b.HoldExpiresAt)
}

// BlocksDates returns true if the booking occupies its date range for
// availability purposes. Confirmed bookings always block; holds block only
// until their expiry instant; everything else never blocks.
func (b *Booking) BlocksDates(now time.Time) bool {
	switch b.Status {
	case StatusConfirmed:
		return true
	case StatusHold:
		return !b.IsHoldExpired(now)
	default:
		return false
	}
}

// CanBeCancelled returns true if the booking can be cancelled.
// Cancellation is legal from hold or confirmed and is irreversible.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusHold || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking is a hold that is still
// confirmable at the given instant
func (b *Booking) CanBeConfirmed(now time.Time) bool {
	return b.Status == StatusHold && !b.IsHoldExpired(now)
}

// OccupiedDates returns every date of the half-open stay range
func (b *Booking) OccupiedDates() []types.DateString {
	return types.DatesBetween(b.CheckIn, b.CheckOut)
}

// CoversDate returns true if the given date falls inside [checkIn, checkOut)
func (b *Booking) CoversDate(d types.DateString) bool {
	return !d.IsBefore(b.CheckIn) && d.IsBefore(b.CheckOut)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Status          *BookingStatus    // Фильтр по статусу (опционально)
	From            *types.DateString // Начало периода по дате заезда (опционально)
	To              *types.DateString // Конец периода (опционально)
	IncludeInactive bool              // Включать ли expired/cancelled бронирования
}
