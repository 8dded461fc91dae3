package request_booking

import "errors"

var (
	// ErrMissingDates возвращается, когда даты заезда или выезда не указаны
	ErrMissingDates = errors.New("request_booking: check-in and check-out dates are required")

	// ErrInvalidDateRange возвращается, когда выезд не позже заезда
	ErrInvalidDateRange = errors.New("request_booking: check-out must be after check-in")

	// ErrBelowMinimumStay возвращается, когда длина проживания меньше минимума
	ErrBelowMinimumStay = errors.New("request_booking: stay is below the minimum nights")

	// ErrDatesUnavailable возвращается, когда хотя бы одна ночь диапазона занята
	ErrDatesUnavailable = errors.New("request_booking: selected dates are not available")

	// ErrPropertyNotConfigured возвращается, когда конфигурация объекта отсутствует
	ErrPropertyNotConfigured = errors.New("request_booking: property is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_booking: internal error")
)
