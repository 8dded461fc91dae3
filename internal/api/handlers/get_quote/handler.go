package get_quote

import (
	"errors"
	"net/http"

	"github.com/saltylife/SL-RentalService/internal/api/handlers"
	checkAvailability "github.com/saltylife/SL-RentalService/internal/usecase/check_availability"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

const (
	msgMissingDates     = "checkIn and checkOut query parameters are required"
	msgInvalidDateRange = "checkOut must be after checkIn"
	msgInvalidInput     = "invalid checkIn or checkOut, expected YYYY-MM-DD"
	msgNotConfigured    = "property is not configured"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/quote?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &checkAvailability.Request{
		CheckIn:  types.DateString(query.Get("checkIn")),
		CheckOut: types.DateString(query.Get("checkOut")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrMissingDates):
			handlers.RespondBadRequest(w, msgMissingDates)

		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkAvailability.ErrPropertyNotConfigured):
			handlers.RespondNotFound(w, msgNotConfigured)

		default:
			h.logger.Error("GET /quote - Failed to build quote: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
