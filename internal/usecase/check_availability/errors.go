package check_availability

import "errors"

var (
	// ErrMissingDates возвращается, когда даты заезда или выезда не указаны
	ErrMissingDates = errors.New("check_availability: check-in and check-out dates are required")

	// ErrInvalidDateRange возвращается, когда выезд не позже заезда
	ErrInvalidDateRange = errors.New("check_availability: check-out must be after check-in")

	// ErrPropertyNotConfigured возвращается, когда конфигурация объекта отсутствует
	ErrPropertyNotConfigured = errors.New("check_availability: property is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
