package calendar

import "errors"

var (
	// ErrConnectionNotFound возвращается, когда подключение календаря не найдено
	ErrConnectionNotFound = errors.New("calendar.repository: connection not found")

	// ErrBlockNotFound возвращается, когда ручная блокировка даты не найдена
	ErrBlockNotFound = errors.New("calendar.repository: blocked date not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
