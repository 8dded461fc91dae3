package request_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltylife/SL-RentalService/internal/domain"
	requestBooking "github.com/saltylife/SL-RentalService/internal/usecase/request_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *requestBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *requestBooking.Request) (*requestBooking.Response, error) {
	return f.resp, f.err
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking-requests", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"guestName":"Ahmed Hassan","checkIn":"2026-01-10","checkOut":"2026-01-12","guests":2}`

func TestHandle_BookingReturns201(t *testing.T) {
	uc := &fakeUseCase{resp: &requestBooking.Response{
		Kind:    requestBooking.ResultBooking,
		Booking: &domain.Booking{ID: "b-1", Status: domain.StatusHold, CheckIn: "2026-01-10", CheckOut: "2026-01-12"},
		Nights:  2,
		Total:   25500,
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking", resp.Kind)
	require.NotNil(t, resp.Booking)
}

func TestHandle_InquiryReturns202(t *testing.T) {
	uc := &fakeUseCase{resp: &requestBooking.Response{
		Kind:    requestBooking.ResultInquiry,
		Inquiry: &domain.Inquiry{ID: "i-1", Status: domain.InquiryStatusNew, CheckIn: "2026-01-10", CheckOut: "2026-01-12"},
		Nights:  2,
		Total:   25500,
	}}

	rec := doRequest(t, uc, validBody)

	// Inquiry ждёт ответа владельца, поэтому Accepted, а не Created
	assert.Equal(t, http.StatusAccepted, rec.Code)

	var resp BookingRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "inquiry", resp.Kind)
	require.NotNil(t, resp.Inquiry)
	assert.Equal(t, "new", resp.Inquiry.Status)
}

func TestHandle_DatesUnavailableReturns409(t *testing.T) {
	uc := &fakeUseCase{err: requestBooking.ErrDatesUnavailable}

	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InvalidBodyReturns400(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"guestName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
