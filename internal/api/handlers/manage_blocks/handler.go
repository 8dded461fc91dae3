package manage_blocks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/saltylife/SL-RentalService/internal/api/handlers"
	"github.com/saltylife/SL-RentalService/internal/service/calendars"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgBlockNotFound      = "date is not blocked"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// BlockRequest тело запроса на закрытие даты
type BlockRequest struct {
	Date string `json:"date"`
}

// BlockListResponse список закрытых вручную дат
type BlockListResponse struct {
	Dates []string `json:"dates"`
	Total int      `json:"total"`
}

// HandleList GET /api/v1/calendar/blocks
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.service.ListBlocks(r.Context())
	if err != nil {
		h.logger.Error("GET /calendar/blocks - Failed to list blocks: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := BlockListResponse{Dates: make([]string, 0, len(blocks)), Total: len(blocks)}
	for _, d := range blocks {
		out.Dates = append(out.Dates, d.String())
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}

// HandleAdd POST /api/v1/calendar/blocks
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req BlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.AddBlock(r.Context(), types.DateString(req.Date)); err != nil {
		if errors.Is(err, calendars.ErrInvalidDate) {
			h.logger.Warn("POST /calendar/blocks - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("POST /calendar/blocks - Failed to add block: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /calendar/blocks - Date blocked: date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusCreated, BlockRequest{Date: req.Date})
}

// HandleRemove DELETE /api/v1/calendar/blocks/{date}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	if err := h.service.RemoveBlock(r.Context(), types.DateString(date)); err != nil {
		switch {
		case errors.Is(err, calendars.ErrInvalidDate):
			h.logger.Warn("DELETE /calendar/blocks/{date} - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, calendars.ErrBlockNotFound):
			h.logger.Warn("DELETE /calendar/blocks/{date} - Block not found: date=%s", date)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /calendar/blocks/{date} - Failed to remove block: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /calendar/blocks/{date} - Date unblocked: date=%s", date)
	w.WriteHeader(http.StatusNoContent)
}
