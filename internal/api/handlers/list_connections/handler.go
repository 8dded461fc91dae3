package list_connections

import (
	"net/http"
	"time"

	"github.com/saltylife/SL-RentalService/internal/api/handlers"
	"github.com/saltylife/SL-RentalService/internal/domain"
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

// ConnectionResponse подключение внешнего календаря
type ConnectionResponse struct {
	ID            string   `json:"id"`
	Platform      string   `json:"platform"`
	URL           string   `json:"url"`
	Status        string   `json:"status"`
	LastSyncAt    *string  `json:"lastSyncAt,omitempty"`
	ImportedDates []string `json:"importedDates"`
}

// ConnectionListResponse список подключений
type ConnectionListResponse struct {
	Connections []ConnectionResponse `json:"connections"`
	Total       int                  `json:"total"`
}

// FromDomainConnection конвертирует подключение в API модель
func FromDomainConnection(c *domain.CalendarConnection) ConnectionResponse {
	resp := ConnectionResponse{
		ID:            c.ID,
		Platform:      c.Platform,
		URL:           c.URL,
		Status:        string(c.Status),
		ImportedDates: make([]string, 0, len(c.ImportedDates)),
	}

	if c.LastSyncAt != nil {
		s := c.LastSyncAt.UTC().Format(time.RFC3339)
		resp.LastSyncAt = &s
	}

	for _, d := range c.ImportedDates {
		resp.ImportedDates = append(resp.ImportedDates, d.String())
	}

	return resp
}

// Handle GET /api/v1/connections
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conns, err := h.service.ListConnections(r.Context())
	if err != nil {
		h.logger.Error("GET /connections - Failed to list connections: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := ConnectionListResponse{Connections: make([]ConnectionResponse, 0, len(conns)), Total: len(conns)}
	for _, c := range conns {
		out.Connections = append(out.Connections, FromDomainConnection(c))
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}
