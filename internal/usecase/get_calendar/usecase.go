package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saltylife/SL-RentalService/internal/domain"
	propertyRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/property"
	"github.com/saltylife/SL-RentalService/internal/service/pricing"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// UseCase use case календаря объекта: цена и занятость по дням
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

// Execute строит календарь за диапазон [From, To).
// Занятость раскладывается по источникам: бронирования имеют приоритет над
// ручными блокировками, ручные — над импортированными.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	from, to, err := resolveRange(req, now)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	config, err := uc.propertyRepo.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrConfigNotFound) {
			uc.logger.Error("GetCalendar: property config is missing")
			return nil, ErrPropertyNotConfigured
		}
		uc.logger.Error("GetCalendar: failed to get property config: %v", err)
		return nil, fmt.Errorf("%w: failed to get property config: %v", ErrInternal, err)
	}

	var (
		manual   []types.DateString
		imported []types.DateString
		bookings []*domain.Booking
	)

	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if manual, err = uc.calendarRepo.ListManualBlocks(txCtx); err != nil {
			return fmt.Errorf("%w: failed to list manual blocks: %v", ErrInternal, err)
		}
		if imported, err = uc.calendarRepo.ListImportedDates(txCtx); err != nil {
			return fmt.Errorf("%w: failed to list imported dates: %v", ErrInternal, err)
		}
		if bookings, err = uc.bookingRepo.ListDateBlocking(txCtx); err != nil {
			return fmt.Errorf("%w: failed to list blocking bookings: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	manualSet := toSet(manual)
	importedSet := toSet(imported)

	dates := types.DatesBetween(from, to)
	days := make([]Day, 0, len(dates))
	for _, d := range dates {
		dp := pricing.PriceForDay(d, config.BasePrice, config.WeekendMult, config.Holidays)
		day := Day{Date: d, Price: dp.Price, Label: dp.Label, Available: true}

		switch {
		case coveredByBooking(bookings, d, now, domain.StatusConfirmed):
			day.Available, day.Reason = false, ReasonConfirmed
		case coveredByBooking(bookings, d, now, domain.StatusHold):
			day.Available, day.Reason = false, ReasonHold
		case contains(manualSet, d):
			day.Available, day.Reason = false, ReasonManual
		case contains(importedSet, d):
			day.Available, day.Reason = false, ReasonImported
		}

		days = append(days, day)
	}

	uc.logger.Info("GetCalendar: built calendar from=%s to=%s, days=%d", from, to, len(days))
	return &Response{From: from, To: to, Days: days}, nil
}

// resolveRange подставляет границы по умолчанию и валидирует диапазон
func resolveRange(req *Request, now time.Time) (types.DateString, types.DateString, error) {
	from := req.From
	if from.IsZero() {
		from = types.NewDateString(now)
	} else if err := from.Validate(); err != nil {
		return "", "", fmt.Errorf("%w: invalid from: %v", ErrInvalidInput, err)
	}

	to := req.To
	if to.IsZero() {
		to = from.AddDays(DefaultRangeDays)
	} else if err := to.Validate(); err != nil {
		return "", "", fmt.Errorf("%w: invalid to: %v", ErrInvalidInput, err)
	}

	if !from.IsBefore(to) {
		return "", "", ErrInvalidDateRange
	}

	if from.DaysUntil(to) > MaxRangeDays {
		return "", "", fmt.Errorf("%w: at most %d days per request", ErrRangeTooLarge, MaxRangeDays)
	}

	return from, to, nil
}

func coveredByBooking(bookings []*domain.Booking, d types.DateString, now time.Time, status domain.BookingStatus) bool {
	for _, b := range bookings {
		if b.Status == status && b.BlocksDates(now) && b.CoversDate(d) {
			return true
		}
	}
	return false
}

func toSet(dates []types.DateString) map[types.DateString]struct{} {
	set := make(map[types.DateString]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

func contains(set map[types.DateString]struct{}, d types.DateString) bool {
	_, ok := set[d]
	return ok
}
