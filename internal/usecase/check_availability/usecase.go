package check_availability

import (
	"context"
	"errors"
	"fmt"

	propertyRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/property"
	"github.com/saltylife/SL-RentalService/internal/service/availability"
	"github.com/saltylife/SL-RentalService/internal/service/pricing"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// UseCase use case расчёта стоимости проживания и проверки доступности дат
type UseCase struct {
	propertyRepo PropertyRepository
	bookingRepo  BookingRepository
	calendarRepo CalendarRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	propertyRepo PropertyRepository,
	bookingRepo BookingRepository,
	calendarRepo CalendarRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyRepo: propertyRepo,
		bookingRepo:  bookingRepo,
		calendarRepo: calendarRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет расчёт стоимости.
// Читает источники занятости в read-only транзакции: результат — снимок
// на момент запроса, без блокировок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	config, err := uc.propertyRepo.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrConfigNotFound) {
			uc.logger.Error("CheckAvailability: property config is missing")
			return nil, ErrPropertyNotConfigured
		}
		uc.logger.Error("CheckAvailability: failed to get property config: %v", err)
		return nil, fmt.Errorf("%w: failed to get property config: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	var blocked *availability.BlockedSet
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		manual, err := uc.calendarRepo.ListManualBlocks(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list manual blocks: %v", ErrInternal, err)
		}

		imported, err := uc.calendarRepo.ListImportedDates(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list imported dates: %v", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.ListDateBlocking(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list blocking bookings: %v", ErrInternal, err)
		}

		blocked = availability.NewBlockedSet(manual, imported, bookings, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	nights := req.CheckIn.DaysUntil(req.CheckOut)

	var accommodation int64
	breakdown := make([]Night, 0, nights)
	for _, d := range types.DatesBetween(req.CheckIn, req.CheckOut) {
		dp := pricing.PriceForDay(d, config.BasePrice, config.WeekendMult, config.Holidays)
		accommodation += dp.Price
		breakdown = append(breakdown, Night{Date: d, Price: dp.Price, Label: dp.Label})
	}

	resp := &Response{
		Available:     blocked.RangeFree(req.CheckIn, req.CheckOut),
		MeetsMinStay:  nights >= config.MinNights,
		MinNights:     config.MinNights,
		Nights:        nights,
		Breakdown:     breakdown,
		Accommodation: accommodation,
		CleaningFee:   config.CleaningFee,
		Total:         accommodation + config.CleaningFee,
	}

	uc.logger.Info("CheckAvailability: checkIn=%s, checkOut=%s, nights=%d, total=%d, available=%t",
		req.CheckIn, req.CheckOut, nights, resp.Total, resp.Available)
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return ErrMissingDates
	}

	if err := req.CheckIn.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkIn format: %v", ErrInvalidInput, err)
	}

	if err := req.CheckOut.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkOut format: %v", ErrInvalidInput, err)
	}

	if !req.CheckIn.IsBefore(req.CheckOut) {
		return ErrInvalidDateRange
	}

	return nil
}
