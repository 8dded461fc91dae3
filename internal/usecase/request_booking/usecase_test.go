package request_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/ptr"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// passthroughTx выполняет fn без реальной транзакции
type passthroughTx struct{ serializableCalls int }

func (m *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.serializableCalls++
	return fn(ctx)
}

type fakePropertyRepo struct{ config *domain.PropertyConfig }

func (f *fakePropertyRepo) GetConfig(ctx context.Context) (*domain.PropertyConfig, error) {
	return f.config, nil
}

type fakeBookingRepo struct {
	blocking []*domain.Booking
	created  []*domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBookingRepo) ListDateBlocking(ctx context.Context) ([]*domain.Booking, error) {
	return f.blocking, nil
}

type fakeInquiryRepo struct{ created []*domain.Inquiry }

func (f *fakeInquiryRepo) Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	f.created = append(f.created, inq)
	return inq, nil
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

func proInstantConfig() *domain.PropertyConfig {
	return &domain.PropertyConfig{
		Name:        "Sea Breeze Apartment",
		BasePrice:   12500,
		CleaningFee: 500,
		MinNights:   1,
		WeekendMult: 1.2,
		BookingMode: domain.ModeInstantBooking,
		HoldMinutes: 30,
		Plan:        domain.PlanPro,
		WhatsApp:    "201234567890",
	}
}

type fixture struct {
	uc        *UseCase
	bookings  *fakeBookingRepo
	inquiries *fakeInquiryRepo
	tx        *passthroughTx
	now       time.Time
}

func newFixture(t *testing.T, config *domain.PropertyConfig, blocking []*domain.Booking, calendar *fakeCalendarRepo) *fixture {
	t.Helper()

	if calendar == nil {
		calendar = &fakeCalendarRepo{}
	}

	f := &fixture{
		bookings:  &fakeBookingRepo{blocking: blocking},
		inquiries: &fakeInquiryRepo{},
		tx:        &passthroughTx{},
		now:       time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
	}
	f.uc = NewUseCase(&fakePropertyRepo{config: config}, f.bookings, f.inquiries, calendar, f.tx, nopLogger{})
	f.uc.timeProvider = fixedClock{f.now}
	return f
}

func validRequest() *Request {
	return &Request{
		GuestName: "Ahmed Hassan",
		Phone:     ptr.Ptr("+201001234567"),
		CheckIn:   "2026-01-10",
		CheckOut:  "2026-01-12",
		Guests:    2,
	}
}

func TestExecute_InstantBookingCreatesHold(t *testing.T) {
	f := newFixture(t, proInstantConfig(), nil, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, ResultBooking, resp.Kind)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, domain.StatusHold, resp.Booking.Status)
	require.NotNil(t, resp.Booking.HoldExpiresAt)
	assert.Equal(t, f.now.Add(30*time.Minute), *resp.Booking.HoldExpiresAt)

	assert.Equal(t, 2, resp.Nights)
	// Sat + Sun at base price, plus the cleaning fee
	assert.Equal(t, int64(25500), resp.Total)
	assert.Equal(t, 1, f.tx.serializableCalls)
	assert.Empty(t, f.inquiries.created)

	assert.NotEmpty(t, resp.Notification.Summary)
	assert.Contains(t, resp.Notification.WALink, "wa.me/201234567890")
}

func TestExecute_InstantConfirmSkipsHold(t *testing.T) {
	config := proInstantConfig()
	config.AllowInstantConfirm = true
	f := newFixture(t, config, nil, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Nil(t, resp.Booking.HoldExpiresAt)
}

func TestExecute_CheckAvailabilityModeCreatesInquiry(t *testing.T) {
	config := proInstantConfig()
	config.BookingMode = domain.ModeCheckAvailability
	f := newFixture(t, config, nil, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, ResultInquiry, resp.Kind)
	require.NotNil(t, resp.Inquiry)
	assert.Equal(t, domain.InquiryStatusNew, resp.Inquiry.Status)
	assert.Equal(t, resp.Total, resp.Inquiry.Estimate)
	assert.Empty(t, f.bookings.created)
}

func TestExecute_InquiryWithoutGuestName(t *testing.T) {
	// В режиме check_availability имя гостя не требуется
	config := proInstantConfig()
	config.BookingMode = domain.ModeCheckAvailability
	f := newFixture(t, config, nil, nil)

	req := validRequest()
	req.GuestName = ""

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, ResultInquiry, resp.Kind)
	require.Len(t, f.inquiries.created, 1)
	assert.Equal(t, domain.InquiryStatusNew, f.inquiries.created[0].Status)
}

func TestExecute_BasicPlanDegradesToInquiry(t *testing.T) {
	// Мгновенное бронирование настроено, но тариф basic
	config := proInstantConfig()
	config.Plan = domain.PlanBasic
	f := newFixture(t, config, nil, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, ResultInquiry, resp.Kind)
	assert.Empty(t, f.bookings.created)
}

func TestExecute_DegradedInquiryNeedsNoGuestName(t *testing.T) {
	// После деградации до inquiry имя гостя не требуется
	config := proInstantConfig()
	config.Plan = domain.PlanBasic
	f := newFixture(t, config, nil, nil)

	req := validRequest()
	req.GuestName = ""

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, ResultInquiry, resp.Kind)
}

func TestExecute_RejectsBelowMinimumStay(t *testing.T) {
	config := proInstantConfig()
	config.MinNights = 2
	f := newFixture(t, config, nil, nil)

	req := validRequest()
	req.CheckOut = "2026-01-11" // одна ночь

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBelowMinimumStay)
	assert.Empty(t, f.bookings.created)
	assert.Empty(t, f.inquiries.created)
}

func TestExecute_RejectsOccupiedDates(t *testing.T) {
	blocking := []*domain.Booking{{
		ID:       "existing",
		CheckIn:  "2026-01-11",
		CheckOut: "2026-01-13",
		Status:   domain.StatusConfirmed,
	}}
	f := newFixture(t, proInstantConfig(), blocking, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDatesUnavailable)
	assert.Empty(t, f.bookings.created)
}

func TestExecute_BackToBackStaysAllowed(t *testing.T) {
	// Существующее бронирование выезжает 10-го, новое заезжает 10-го
	blocking := []*domain.Booking{{
		ID:       "existing",
		CheckIn:  "2026-01-08",
		CheckOut: "2026-01-10",
		Status:   domain.StatusConfirmed,
	}}
	f := newFixture(t, proInstantConfig(), blocking, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_ExpiredHoldDoesNotBlock(t *testing.T) {
	expired := time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC)
	blocking := []*domain.Booking{{
		ID:            "stale",
		CheckIn:       "2026-01-10",
		CheckOut:      "2026-01-12",
		Status:        domain.StatusHold,
		HoldExpiresAt: &expired,
	}}
	f := newFixture(t, proInstantConfig(), blocking, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, ResultBooking, resp.Kind)
}

func TestExecute_ManualAndImportedBlocks(t *testing.T) {
	calendar := &fakeCalendarRepo{imported: []types.DateString{"2026-01-11"}}
	f := newFixture(t, proInstantConfig(), nil, calendar)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDatesUnavailable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(t, proInstantConfig(), nil, nil)

	cases := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing guest name", func(r *Request) { r.GuestName = " " }, ErrInvalidInput},
		{"missing dates", func(r *Request) { r.CheckIn = "" }, ErrMissingDates},
		{"inverted range", func(r *Request) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }, ErrInvalidDateRange},
		{"same day", func(r *Request) { r.CheckOut = r.CheckIn }, ErrInvalidDateRange},
		{"bad date format", func(r *Request) { r.CheckIn = "10.01.2026" }, ErrInvalidInput},
		{"zero guests", func(r *Request) { r.Guests = 0 }, ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
