package calendars

import "errors"

var (
	// ErrBlockNotFound возвращается, когда ручная блокировка даты не найдена
	ErrBlockNotFound = errors.New("blocked date not found")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
