package sync_connection

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/saltylife/SL-RentalService/internal/api/handlers"
	syncCalendar "github.com/saltylife/SL-RentalService/internal/usecase/sync_calendar"
)

const (
	msgNotFound       = "connection not found"
	msgPlanRestricted = "calendar sync requires the pro plan"
	msgSyncFailed     = "failed to sync external calendar, previous dates are kept"
	msgNotConfigured  = "property is not configured"
)

type Handler struct {
	useCase SyncCalendarUseCase
	logger  Logger
}

func NewHandler(useCase SyncCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SyncResponse результат синхронизации подключения
type SyncResponse struct {
	ID         string  `json:"id"`
	Platform   string  `json:"platform"`
	Status     string  `json:"status"`
	LastSyncAt *string `json:"lastSyncAt,omitempty"`
	Imported   int     `json:"imported"`
}

func fromUseCaseResponse(resp *syncCalendar.Response) *SyncResponse {
	out := &SyncResponse{
		ID:       resp.Connection.ID,
		Platform: resp.Connection.Platform,
		Status:   string(resp.Connection.Status),
		Imported: resp.Imported,
	}
	if resp.Connection.LastSyncAt != nil {
		s := resp.Connection.LastSyncAt.UTC().Format(time.RFC3339)
		out.LastSyncAt = &s
	}
	return out
}

// Handle POST /api/v1/connections/{connectionId}/sync
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	connectionID := mux.Vars(r)["connectionId"]

	result, err := h.useCase.Execute(r.Context(), connectionID)
	if err != nil {
		switch {
		case errors.Is(err, syncCalendar.ErrConnectionNotFound):
			h.logger.Warn("POST /connections/{id}/sync - Connection not found: connection_id=%s", connectionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, syncCalendar.ErrPlanRestricted):
			h.logger.Warn("POST /connections/{id}/sync - Plan restricted: connection_id=%s", connectionID)
			handlers.RespondForbidden(w, msgPlanRestricted)

		case errors.Is(err, syncCalendar.ErrSyncFailed):
			h.logger.Warn("POST /connections/{id}/sync - Sync failed: connection_id=%s, error=%v", connectionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSyncFailed)

		case errors.Is(err, syncCalendar.ErrPropertyNotConfigured):
			handlers.RespondNotFound(w, msgNotConfigured)

		default:
			h.logger.Error("POST /connections/{id}/sync - Failed to sync: connection_id=%s, error=%v", connectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /connections/{id}/sync - Synced: connection_id=%s, imported=%d", connectionID, result.Imported)
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}
