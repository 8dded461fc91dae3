package calendars

import (
	"context"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// CalendarRepository интерфейс репозитория календарных блокировок
type CalendarRepository interface {
	ListManualBlocks(ctx context.Context) ([]types.DateString, error)
	AddManualBlock(ctx context.Context, day types.DateString) error
	RemoveManualBlock(ctx context.Context, day types.DateString) error
	ListConnections(ctx context.Context) ([]*domain.CalendarConnection, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
