package domain

import "time"

// Default configuration values
const (
	DefaultHoldMinutes = 30
	DefaultMinNights   = 1
	DefaultWeekendMult = 1.0
)

// Business validation constants
const (
	MaxGuests        = 50
	MaxStayNights    = 90
	MaxGuestNameLen  = 200
	MaxAdvanceMonths = 24
)

// Weekend days for this market: Thursday and Friday, not Saturday/Sunday
var WeekendDays = [2]time.Weekday{time.Thursday, time.Friday}

// IsWeekend returns true for Thursday and Friday
func IsWeekend(d time.Weekday) bool {
	return d == time.Thursday || d == time.Friday
}

// Price labels returned by the pricing engine for non-holiday days
const (
	LabelBase    = "Base"
	LabelWeekend = "Weekend"
)

// InactiveStatuses список статусов, при которых бронирование не блокирует даты
var InactiveStatuses = []BookingStatus{
	StatusExpired,
	StatusCancelled,
}

// DateBlockingStatuses список статусов, при которых бронирование занимает даты
var DateBlockingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusHold,
}
