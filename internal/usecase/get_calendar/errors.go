package get_calendar

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда конец диапазона не позже начала
	ErrInvalidDateRange = errors.New("get_calendar: range end must be after range start")

	// ErrRangeTooLarge возвращается, когда запрошенный диапазон превышает лимит
	ErrRangeTooLarge = errors.New("get_calendar: requested range is too large")

	// ErrPropertyNotConfigured возвращается, когда конфигурация объекта отсутствует
	ErrPropertyNotConfigured = errors.New("get_calendar: property is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
