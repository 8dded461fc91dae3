package sync_connection

import (
	"context"

	syncCalendar "github.com/saltylife/SL-RentalService/internal/usecase/sync_calendar"
)

type SyncCalendarUseCase interface {
	Execute(ctx context.Context, connectionID string) (*syncCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
