package request_booking

import (
	"errors"
	"net/http"

	"github.com/saltylife/SL-RentalService/internal/api/handlers"
	requestBooking "github.com/saltylife/SL-RentalService/internal/usecase/request_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingDates       = "checkIn and checkOut are required"
	msgInvalidDateRange   = "checkOut must be after checkIn"
	msgBelowMinimumStay   = "stay is below the minimum nights"
	msgDatesUnavailable   = "selected dates are not available"
	msgInvalidInput       = "invalid request data"
	msgNotConfigured      = "property is not configured"
)

type Handler struct {
	useCase RequestBookingUseCase
	logger  Logger
}

func NewHandler(useCase RequestBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, requestBooking.ErrDatesUnavailable):
			h.logger.Warn("POST /booking-requests - Dates unavailable: checkIn=%s, checkOut=%s", req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgDatesUnavailable)

		case errors.Is(err, requestBooking.ErrMissingDates):
			handlers.RespondBadRequest(w, msgMissingDates)

		case errors.Is(err, requestBooking.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, requestBooking.ErrBelowMinimumStay):
			handlers.RespondBadRequest(w, msgBelowMinimumStay)

		case errors.Is(err, requestBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, requestBooking.ErrPropertyNotConfigured):
			handlers.RespondNotFound(w, msgNotConfigured)

		default:
			h.logger.Error("POST /booking-requests - Failed to process request: checkIn=%s, checkOut=%s, error=%v",
				req.CheckIn, req.CheckOut, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	// Бронирование создано сразу — 201; inquiry ждёт ответа владельца — 202
	status := http.StatusCreated
	if result.Kind == requestBooking.ResultInquiry {
		status = http.StatusAccepted
	}

	h.logger.Info("POST /booking-requests - Request processed: kind=%s, total=%d", response.Kind, response.Total)
	handlers.RespondJSON(w, status, response)
}
