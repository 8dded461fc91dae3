package icalfeed

import "errors"

var (
	// ErrFetchFailed возвращается, когда внешний календарь недоступен
	// или ответил неуспешным статусом
	ErrFetchFailed = errors.New("icalfeed client: failed to fetch feed")

	// ErrInvalidFeed возвращается, когда тело ответа не похоже на iCalendar
	ErrInvalidFeed = errors.New("icalfeed client: invalid feed payload")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("icalfeed client: internal error")
)
