package availability

import "errors"

var (
	// ErrMissingDates возвращается, когда не задана дата заезда или выезда
	ErrMissingDates = errors.New("availability: check-in and check-out dates are required")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("availability: check-out must be after check-in")

	// ErrBelowMinimumStay возвращается, когда ночей меньше минимума по конфигурации
	ErrBelowMinimumStay = errors.New("availability: stay is below the minimum nights")

	// ErrDatesUnavailable возвращается, когда интервал пересекается с занятыми датами
	ErrDatesUnavailable = errors.New("availability: selected dates are not available")
)
