package list_bookings

import (
	"net/http"

	"github.com/saltylife/SL-RentalService/internal/api/handlers"
	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/internal/service/bookings/models"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

const (
	msgInvalidStatus = "invalid status filter"
	msgInvalidDate   = "invalid from or to, expected YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?status=&from=&to=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter domain.BookingsFilter
	filter.IncludeInactive = query.Get("includeInactive") == "true"

	if s := query.Get("status"); s != "" {
		status, err := models.ToDomainBookingStatus(s)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	if s := query.Get("from"); s != "" {
		from := types.DateString(s)
		if err := from.Validate(); err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.From = &from
	}

	if s := query.Get("to"); s != "" {
		to := types.DateString(s)
		if err := to.Validate(); err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.To = &to
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
