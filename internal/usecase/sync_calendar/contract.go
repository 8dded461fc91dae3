package sync_calendar

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

// CalendarRepository интерфейс репозитория подключений календарей
type CalendarRepository interface {
	GetConnection(ctx context.Context, id string) (*domain.CalendarConnection, error)
	ListConnections(ctx context.Context) ([]*domain.CalendarConnection, error)
	UpdateConnectionStatus(ctx context.Context, id string, status domain.ConnectionStatus) error
	ReplaceImported(ctx context.Context, id string, dates []types.DateString, syncedAt time.Time) error
}

// FeedClient интерфейс клиента внешнего iCal-фида
type FeedClient interface {
	FetchImportedDates(ctx context.Context, feedURL string) ([]types.DateString, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
