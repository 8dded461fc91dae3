package list_connections

import (
	"context"

	"github.com/saltylife/SL-RentalService/internal/domain"
)

type CalendarService interface {
	ListConnections(ctx context.Context) ([]*domain.CalendarConnection, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
