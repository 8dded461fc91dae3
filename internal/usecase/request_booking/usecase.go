package request_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/saltylife/SL-RentalService/internal/domain"
	propertyRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/property"
	"github.com/saltylife/SL-RentalService/internal/service/availability"
	"github.com/saltylife/SL-RentalService/internal/service/notify"
	"github.com/saltylife/SL-RentalService/internal/service/pricing"
)

// UseCase use case обработки запроса гостя на проживание.
// В зависимости от режима объекта запрос завершается либо созданием inquiry
// (владелец отвечает вручную), либо созданием бронирования hold/confirmed.
type UseCase struct {
	propertyRepo PropertyRepository
	bookingRepo  BookingRepository
	inquiryRepo  InquiryRepository
	calendarRepo CalendarRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	propertyRepo PropertyRepository,
	bookingRepo BookingRepository,
	inquiryRepo InquiryRepository,
	calendarRepo CalendarRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyRepo: propertyRepo,
		bookingRepo:  bookingRepo,
		inquiryRepo:  inquiryRepo,
		calendarRepo: calendarRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case обработки запроса на проживание.
// Проверка доступности и запись выполняются в одной сериализуемой транзакции:
// занятые бронирования читаются с блокировкой FOR UPDATE, поэтому два
// конкурентных запроса на пересекающиеся даты не могут пройти оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestBooking: guest=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.GuestName, req.CheckIn, req.CheckOut, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию объекта
	config, err := uc.propertyRepo.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrConfigNotFound) {
			uc.logger.Error("RequestBooking: property config is missing")
			return nil, ErrPropertyNotConfigured
		}
		uc.logger.Error("RequestBooking: failed to get property config: %v", err)
		return nil, fmt.Errorf("%w: failed to get property config: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	nights := req.CheckIn.DaysUntil(req.CheckOut)
	total := pricing.Estimate(req.CheckIn, req.CheckOut, config.BasePrice, config.CleaningFee, config.WeekendMult, config.Holidays)

	instant := config.BookingMode == domain.ModeInstantBooking
	if instant && !config.CanInstantBook() {
		// Мгновенное бронирование доступно только на тарифе pro:
		// на basic запрос деградирует до inquiry
		uc.logger.Warn("RequestBooking: instant booking requires pro plan, falling back to inquiry")
		instant = false
	}

	// Имя гостя обязательно только для мгновенного бронирования
	if instant {
		if err := validateGuestName(req); err != nil {
			uc.logger.Warn("RequestBooking: validation failed: %v", err)
			return nil, err
		}
	}

	var resp *Response

	// 3. Проверка доступности и запись — атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		manual, err := uc.calendarRepo.ListManualBlocks(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list manual blocks: %v", ErrInternal, err)
		}

		imported, err := uc.calendarRepo.ListImportedDates(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list imported dates: %v", ErrInternal, err)
		}

		// Внутри транзакции строки confirmed/hold читаются с FOR UPDATE
		blocking, err := uc.bookingRepo.ListDateBlocking(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list blocking bookings: %v", ErrInternal, err)
		}

		blocked := availability.NewBlockedSet(manual, imported, blocking, now)
		if err := availability.ValidateStay(req.CheckIn, req.CheckOut, config.MinNights, blocked); err != nil {
			return mapAvailabilityError(err)
		}

		if !instant {
			inquiry, err := uc.inquiryRepo.Create(txCtx, &domain.Inquiry{
				ID:       uuid.NewString(),
				CheckIn:  req.CheckIn,
				CheckOut: req.CheckOut,
				Guests:   req.Guests,
				Estimate: total,
				Status:   domain.InquiryStatusNew,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to create inquiry: %v", ErrInternal, err)
			}

			resp = &Response{
				Kind:         ResultInquiry,
				Inquiry:      inquiry,
				Nights:       nights,
				Total:        total,
				Notification: notify.ForInquiry(config.Name, config.WhatsApp, inquiry),
			}
			return nil
		}

		booking := &domain.Booking{
			ID:        uuid.NewString(),
			GuestName: req.GuestName,
			Phone:     req.Phone,
			Email:     req.Email,
			CheckIn:   req.CheckIn,
			CheckOut:  req.CheckOut,
			Guests:    req.Guests,
			Nights:    nights,
			Total:     total,
			Source:    domain.SourceDirect,
		}

		if config.AllowInstantConfirm {
			booking.Status = domain.StatusConfirmed
		} else {
			expiresAt := now.Add(config.HoldDuration())
			booking.Status = domain.StatusHold
			booking.HoldExpiresAt = &expiresAt
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		resp = &Response{
			Kind:         ResultBooking,
			Booking:      created,
			Nights:       nights,
			Total:        total,
			Notification: notify.ForBooking(config.Name, config.WhatsApp, created),
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("RequestBooking: transaction failed: %v", err)
		return nil, err
	}

	if resp.Kind == ResultBooking {
		uc.logger.Info("RequestBooking: created booking id=%s status=%s total=%d",
			resp.Booking.ID, resp.Booking.Status, resp.Total)
	} else {
		uc.logger.Info("RequestBooking: created inquiry id=%s estimate=%d", resp.Inquiry.ID, resp.Total)
	}

	return resp, nil
}

// mapAvailabilityError транслирует ошибки сервиса доступности
// в ошибки usecase для обработки на уровне API
func mapAvailabilityError(err error) error {
	switch {
	case errors.Is(err, availability.ErrMissingDates):
		return ErrMissingDates
	case errors.Is(err, availability.ErrInvalidRange):
		return ErrInvalidDateRange
	case errors.Is(err, availability.ErrBelowMinimumStay):
		return fmt.Errorf("%w: %v", ErrBelowMinimumStay, err)
	case errors.Is(err, availability.ErrDatesUnavailable):
		return ErrDatesUnavailable
	default:
		return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
}
