package calendars

import (
	"context"
	"errors"
	"fmt"

	"github.com/saltylife/SL-RentalService/internal/domain"
	calendarRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/calendar"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// Service сервис управления ручными блокировками дат и подключениями
// внешних календарей
type Service struct {
	calendarRepo CalendarRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса календарей
func NewService(calendarRepo CalendarRepository, logger Logger) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// ListBlocks возвращает все даты, закрытые владельцем вручную
func (s *Service) ListBlocks(ctx context.Context) ([]types.DateString, error) {
	blocks, err := s.calendarRepo.ListManualBlocks(ctx)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}
	return blocks, nil
}

// AddBlock закрывает дату вручную. Повторное закрытие той же даты
// не является ошибкой.
func (s *Service) AddBlock(ctx context.Context, day types.DateString) error {
	if err := day.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if err := s.calendarRepo.AddManualBlock(ctx, day); err != nil {
		s.logger.Error("AddBlock: repository error for date=%s: %v", day, err)
		return fmt.Errorf("%w: AddBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddBlock: date %s blocked", day)
	return nil
}

// RemoveBlock снимает ручную блокировку даты
func (s *Service) RemoveBlock(ctx context.Context, day types.DateString) error {
	if err := day.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if err := s.calendarRepo.RemoveManualBlock(ctx, day); err != nil {
		if errors.Is(err, calendarRepo.ErrBlockNotFound) {
			s.logger.Warn("RemoveBlock: date %s is not blocked", day)
			return ErrBlockNotFound
		}
		s.logger.Error("RemoveBlock: repository error for date=%s: %v", day, err)
		return fmt.Errorf("%w: RemoveBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveBlock: date %s unblocked", day)
	return nil
}

// ListConnections возвращает подключения внешних календарей
// вместе с импортированными датами
func (s *Service) ListConnections(ctx context.Context) ([]*domain.CalendarConnection, error) {
	conns, err := s.calendarRepo.ListConnections(ctx)
	if err != nil {
		s.logger.Error("ListConnections: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListConnections - repository error: %v", ErrInternal, err)
	}
	return conns, nil
}
