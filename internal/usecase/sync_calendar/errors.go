package sync_calendar

import "errors"

var (
	// ErrConnectionNotFound возвращается, когда подключение календаря не найдено
	ErrConnectionNotFound = errors.New("sync_calendar: connection not found")

	// ErrPlanRestricted возвращается, когда синхронизация недоступна на тарифе
	ErrPlanRestricted = errors.New("sync_calendar: calendar sync requires pro plan")

	// ErrSyncFailed возвращается, когда фид недоступен или не распарсился;
	// ранее импортированные даты при этом сохраняются
	ErrSyncFailed = errors.New("sync_calendar: failed to sync external calendar")

	// ErrPropertyNotConfigured возвращается, когда конфигурация объекта отсутствует
	ErrPropertyNotConfigured = errors.New("sync_calendar: property is not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sync_calendar: internal error")
)
