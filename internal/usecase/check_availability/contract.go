package check_availability

import (
	"context"
	"time"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// PropertyRepository интерфейс репозитория конфигурации объекта
type PropertyRepository interface {
	GetConfig(ctx context.Context) (*domain.PropertyConfig, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListDateBlocking(ctx context.Context) ([]*domain.Booking, error)
}

// CalendarRepository интерфейс репозитория календарных блокировок
type CalendarRepository interface {
	ListManualBlocks(ctx context.Context) ([]types.DateString, error)
	ListImportedDates(ctx context.Context) ([]types.DateString, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
