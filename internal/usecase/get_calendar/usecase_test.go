package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type passthroughTx struct{}

func (passthroughTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePropertyRepo struct{ config *domain.PropertyConfig }

func (f *fakePropertyRepo) GetConfig(ctx context.Context) (*domain.PropertyConfig, error) {
	return f.config, nil
}

type fakeBookingRepo struct{ blocking []*domain.Booking }

func (f *fakeBookingRepo) ListDateBlocking(ctx context.Context) ([]*domain.Booking, error) {
	return f.blocking, nil
}

type fakeCalendarRepo struct {
	manual   []types.DateString
	imported []types.DateString
}

func (f *fakeCalendarRepo) ListManualBlocks(ctx context.Context) ([]types.DateString, error) {
	return f.manual, nil
}

func (f *fakeCalendarRepo) ListImportedDates(ctx context.Context) ([]types.DateString, error) {
	return f.imported, nil
}

var testNow = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

func newUseCaseWith(bookings *fakeBookingRepo, calendar *fakeCalendarRepo) *UseCase {
	if bookings == nil {
		bookings = &fakeBookingRepo{}
	}
	if calendar == nil {
		calendar = &fakeCalendarRepo{}
	}

	config := &domain.PropertyConfig{
		Name:        "Sea Breeze Apartment",
		BasePrice:   12500,
		WeekendMult: 1.2,
		Plan:        domain.PlanPro,
	}
	uc := NewUseCase(&fakePropertyRepo{config: config}, bookings, calendar, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedClock{testNow}
	return uc
}

func dayByDate(t *testing.T, days []Day, date types.DateString) Day {
	t.Helper()
	for _, d := range days {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("day %s not found", date)
	return Day{}
}

func TestExecute_ReasonPriority(t *testing.T) {
	expiresAt := testNow.Add(30 * time.Minute)
	bookings := &fakeBookingRepo{blocking: []*domain.Booking{
		{ID: "c-1", CheckIn: "2026-01-10", CheckOut: "2026-01-12", Status: domain.StatusConfirmed},
		{ID: "h-1", CheckIn: "2026-01-12", CheckOut: "2026-01-13", Status: domain.StatusHold, HoldExpiresAt: &expiresAt},
	}}
	calendar := &fakeCalendarRepo{
		// Ручная блокировка пересекается с подтверждённым бронированием:
		// источник в ответе — бронирование
		manual:   []types.DateString{"2026-01-11", "2026-01-14"},
		imported: []types.DateString{"2026-01-14", "2026-01-15"},
	}
	uc := newUseCaseWith(bookings, calendar)

	resp, err := uc.Execute(context.Background(), &Request{From: "2026-01-10", To: "2026-01-16"})
	require.NoError(t, err)
	require.Len(t, resp.Days, 6)

	assert.Equal(t, ReasonConfirmed, dayByDate(t, resp.Days, "2026-01-10").Reason)
	assert.Equal(t, ReasonConfirmed, dayByDate(t, resp.Days, "2026-01-11").Reason)
	assert.Equal(t, ReasonHold, dayByDate(t, resp.Days, "2026-01-12").Reason)
	assert.Equal(t, ReasonManual, dayByDate(t, resp.Days, "2026-01-14").Reason)
	assert.Equal(t, ReasonImported, dayByDate(t, resp.Days, "2026-01-15").Reason)

	free := dayByDate(t, resp.Days, "2026-01-13")
	assert.True(t, free.Available)
	assert.Empty(t, free.Reason)
}

func TestExecute_ExpiredHoldShownAsAvailable(t *testing.T) {
	expired := testNow.Add(-time.Minute)
	bookings := &fakeBookingRepo{blocking: []*domain.Booking{
		{ID: "h-1", CheckIn: "2026-01-10", CheckOut: "2026-01-12", Status: domain.StatusHold, HoldExpiresAt: &expired},
	}}
	uc := newUseCaseWith(bookings, nil)

	resp, err := uc.Execute(context.Background(), &Request{From: "2026-01-10", To: "2026-01-12"})
	require.NoError(t, err)

	for _, d := range resp.Days {
		assert.True(t, d.Available, "day %s", d.Date)
	}
}

func TestExecute_DefaultRange(t *testing.T) {
	uc := newUseCaseWith(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2026-01-05"), resp.From)
	assert.Equal(t, types.DateString("2026-01-05").AddDays(DefaultRangeDays), resp.To)
	assert.Len(t, resp.Days, DefaultRangeDays)
}

func TestExecute_WeekendPricesInCalendar(t *testing.T) {
	uc := newUseCaseWith(nil, nil)

	// 2026-01-08 четверг, 2026-01-09 пятница
	resp, err := uc.Execute(context.Background(), &Request{From: "2026-01-08", To: "2026-01-10"})
	require.NoError(t, err)

	assert.Equal(t, int64(15000), dayByDate(t, resp.Days, "2026-01-08").Price)
	assert.Equal(t, domain.LabelWeekend, dayByDate(t, resp.Days, "2026-01-08").Label)
	assert.Equal(t, int64(15000), dayByDate(t, resp.Days, "2026-01-09").Price)
}

func TestExecute_RangeValidation(t *testing.T) {
	uc := newUseCaseWith(nil, nil)

	cases := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"inverted", &Request{From: "2026-01-10", To: "2026-01-05"}, ErrInvalidDateRange},
		{"equal bounds", &Request{From: "2026-01-10", To: "2026-01-10"}, ErrInvalidDateRange},
		{"bad from", &Request{From: "Jan 10", To: "2026-01-12"}, ErrInvalidInput},
		{"too large", &Request{From: "2026-01-01", To: "2027-02-01"}, ErrRangeTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
