package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/saltylife/SL-RentalService/internal/domain"
	bookingRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/booking"
	"github.com/saltylife/SL-RentalService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований.
// Отвечает за переходы статусов: hold -> confirmed / expired / cancelled,
// confirmed -> cancelled, а также за фоновое протухание hold'ов.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Если hold уже истёк, бронирование возвращается со статусом expired,
// даже если фоновая зачистка ещё не успела обновить строку.
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.applyLazyExpiry(booking)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по статусу и периоду.
// По умолчанию неактивные (expired, cancelled) исключаются.
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter) (*models.BookingListResponse, error) {
	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	for _, b := range list {
		s.applyLazyExpiry(b)
	}

	s.logger.Info("List: fetched %d bookings", len(list))
	return models.FromDomainBookingList(list), nil
}

// Confirm подтверждает бронирование в статусе hold.
// Подтверждение легально только пока hold не истёк; при попытке подтвердить
// протухший hold бронирование переводится в expired и возвращается
// ErrStaleConfirmation.
func (s *Service) Confirm(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	if booking.Status == domain.StatusHold && booking.IsHoldExpired(now) {
		// Опоздавшее подтверждение: фиксируем expired вместо confirmed
		if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusExpired); err != nil {
			s.logger.Error("Confirm: failed to expire stale hold id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Confirm - expire stale hold: %v", ErrInternal, err)
		}
		s.logger.Warn("Confirm: stale confirmation for booking id=%s, hold expired at %v", id, booking.HoldExpiresAt)
		return nil, ErrStaleConfirmation
	}

	if !booking.CanBeConfirmed(now) {
		s.logger.Warn("Confirm: booking id=%s cannot be confirmed, status=%s", id, booking.Status)
		return nil, ErrCannotConfirm
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed
	booking.HoldExpiresAt = nil

	s.logger.Info("Confirm: successfully confirmed booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование.
// Отменить можно только hold или confirmed; отмена hold немедленно
// освобождает его даты.
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.applyLazyExpiry(booking)

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	booking.HoldExpiresAt = nil

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// ExpireStaleHolds переводит все протухшие hold'ы в expired.
// Вызывается фоновым тикером; ленивое протухание в чтениях делает
// точный момент вызова некритичным.
func (s *Service) ExpireStaleHolds(ctx context.Context) (int64, error) {
	expired, err := s.bookingRepo.ExpireStaleHolds(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ExpireStaleHolds: repository error: %v", err)
		return 0, fmt.Errorf("%w: ExpireStaleHolds - repository error: %v", ErrInternal, err)
	}

	if expired > 0 {
		s.logger.Info("ExpireStaleHolds: expired %d stale holds", expired)
	}
	return expired, nil
}

// applyLazyExpiry отражает истёкший hold в прочитанной записи,
// не дожидаясь фоновой зачистки
func (s *Service) applyLazyExpiry(b *domain.Booking) {
	if b.Status == domain.StatusHold && b.IsHoldExpired(s.timeProvider.Now()) {
		b.Status = domain.StatusExpired
	}
}
