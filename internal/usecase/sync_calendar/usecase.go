package sync_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/saltylife/SL-RentalService/internal/domain"
	calendarRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/calendar"
	propertyRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/property"
)

// UseCase use case синхронизации одного подключения внешнего календаря.
// Успешная синхронизация полностью заменяет импортированные даты подключения
// (деструктивная замена); неуспешная — ничего не трогает и помечает
// подключение статусом error.
type UseCase struct {
	propertyRepo PropertyRepository
	calendarRepo CalendarRepository
	feedClient   FeedClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	propertyRepo PropertyRepository,
	calendarRepo CalendarRepository,
	feedClient FeedClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyRepo: propertyRepo,
		calendarRepo: calendarRepo,
		feedClient:   feedClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Response результат синхронизации подключения
type Response struct {
	Connection *domain.CalendarConnection
	Imported   int
}

// Execute синхронизирует подключение по ID.
// Сетевой запрос выполняется вне транзакции; замена дат — внутри.
func (uc *UseCase) Execute(ctx context.Context, connectionID string) (*Response, error) {
	uc.logger.Info("SyncCalendar: syncing connection id=%s", connectionID)

	config, err := uc.propertyRepo.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrConfigNotFound) {
			uc.logger.Error("SyncCalendar: property config is missing")
			return nil, ErrPropertyNotConfigured
		}
		uc.logger.Error("SyncCalendar: failed to get property config: %v", err)
		return nil, fmt.Errorf("%w: failed to get property config: %v", ErrInternal, err)
	}

	if !config.CanSyncCalendars() {
		uc.logger.Warn("SyncCalendar: sync rejected, plan=%s", config.Plan)
		return nil, ErrPlanRestricted
	}

	conn, err := uc.calendarRepo.GetConnection(ctx, connectionID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrConnectionNotFound) {
			uc.logger.Warn("SyncCalendar: connection id=%s not found", connectionID)
			return nil, ErrConnectionNotFound
		}
		uc.logger.Error("SyncCalendar: failed to get connection id=%s: %v", connectionID, err)
		return nil, fmt.Errorf("%w: failed to get connection: %v", ErrInternal, err)
	}

	if err := uc.calendarRepo.UpdateConnectionStatus(ctx, connectionID, domain.ConnectionSyncing); err != nil {
		uc.logger.Error("SyncCalendar: failed to mark connection id=%s as syncing: %v", connectionID, err)
		return nil, fmt.Errorf("%w: failed to mark connection as syncing: %v", ErrInternal, err)
	}

	dates, err := uc.feedClient.FetchImportedDates(ctx, conn.URL)
	if err != nil {
		// Неудачная синхронизация не трогает ранее импортированные даты
		if statusErr := uc.calendarRepo.UpdateConnectionStatus(ctx, connectionID, domain.ConnectionError); statusErr != nil {
			uc.logger.Error("SyncCalendar: failed to mark connection id=%s as error: %v", connectionID, statusErr)
		}
		uc.logger.Warn("SyncCalendar: fetch failed for connection id=%s (%s): %v", connectionID, conn.Platform, err)
		return nil, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	syncedAt := uc.timeProvider.Now()

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		return uc.calendarRepo.ReplaceImported(txCtx, connectionID, dates, syncedAt)
	})
	if err != nil {
		if statusErr := uc.calendarRepo.UpdateConnectionStatus(ctx, connectionID, domain.ConnectionError); statusErr != nil {
			uc.logger.Error("SyncCalendar: failed to mark connection id=%s as error: %v", connectionID, statusErr)
		}
		uc.logger.Error("SyncCalendar: failed to replace imported dates for connection id=%s: %v", connectionID, err)
		return nil, fmt.Errorf("%w: failed to store imported dates: %v", ErrInternal, err)
	}

	conn.Status = domain.ConnectionConnected
	conn.LastSyncAt = &syncedAt
	conn.ImportedDates = dates

	uc.logger.Info("SyncCalendar: connection id=%s synced, imported %d dates", connectionID, len(dates))
	return &Response{Connection: conn, Imported: len(dates)}, nil
}

// ExecuteAll синхронизирует все подключения по расписанию.
// Ошибки отдельных подключений не прерывают проход.
func (uc *UseCase) ExecuteAll(ctx context.Context) {
	conns, err := uc.calendarRepo.ListConnections(ctx)
	if err != nil {
		uc.logger.Error("SyncCalendar: failed to list connections for scheduled sync: %v", err)
		return
	}

	for _, conn := range conns {
		if _, err := uc.Execute(ctx, conn.ID); err != nil {
			uc.logger.Warn("SyncCalendar: scheduled sync for connection id=%s failed: %v", conn.ID, err)
		}
	}
}
