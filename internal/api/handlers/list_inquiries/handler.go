package list_inquiries

import (
	"net/http"
	"time"

	"github.com/saltylife/SL-RentalService/internal/api/handlers"
	"github.com/saltylife/SL-RentalService/internal/domain"
)

const msgInvalidStatus = "invalid status filter"

type Handler struct {
	inquiries InquiryProvider
	logger    Logger
}

func NewHandler(inquiries InquiryProvider, logger Logger) *Handler {
	return &Handler{
		inquiries: inquiries,
		logger:    logger,
	}
}

// InquiryResponse модель запроса доступности для API
type InquiryResponse struct {
	ID        string `json:"id"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Guests    int    `json:"guests"`
	Estimate  int64  `json:"estimate"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// InquiryListResponse список запросов доступности
type InquiryListResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	Total     int               `json:"total"`
}

// Handle GET /api/v1/inquiries?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *domain.InquiryStatus
	if s := r.URL.Query().Get("status"); s != "" {
		switch domain.InquiryStatus(s) {
		case domain.InquiryStatusNew, domain.InquiryStatusHandled:
			st := domain.InquiryStatus(s)
			status = &st
		default:
			h.logger.Warn("GET /inquiries - Invalid status filter: %s", s)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
	}

	list, err := h.inquiries.List(r.Context(), status)
	if err != nil {
		h.logger.Error("GET /inquiries - Failed to list inquiries: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := InquiryListResponse{Inquiries: make([]InquiryResponse, 0, len(list)), Total: len(list)}
	for _, inq := range list {
		out.Inquiries = append(out.Inquiries, InquiryResponse{
			ID:        inq.ID,
			CheckIn:   inq.CheckIn.String(),
			CheckOut:  inq.CheckOut.String(),
			Guests:    inq.Guests,
			Estimate:  inq.Estimate,
			Status:    string(inq.Status),
			CreatedAt: inq.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}
