package get_calendar

import (
	"errors"
	"net/http"

	"github.com/saltylife/SL-RentalService/internal/api/handlers"
	getCalendar "github.com/saltylife/SL-RentalService/internal/usecase/get_calendar"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

const (
	msgInvalidDateRange = "to must be after from"
	msgRangeTooLarge    = "requested range is too large"
	msgInvalidInput     = "invalid from or to, expected YYYY-MM-DD"
	msgNotConfigured    = "property is not configured"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getCalendar.Request{
		From: types.DateString(query.Get("from")),
		To:   types.DateString(query.Get("to")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getCalendar.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getCalendar.ErrPropertyNotConfigured):
			handlers.RespondNotFound(w, msgNotConfigured)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
