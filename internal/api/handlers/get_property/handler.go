package get_property

import (
	"errors"
	"net/http"

	"github.com/saltylife/SL-RentalService/internal/api/handlers"
	propertyRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/property"
)

const msgNotConfigured = "property is not configured"

type Handler struct {
	property PropertyProvider
	logger   Logger
}

func NewHandler(property PropertyProvider, logger Logger) *Handler {
	return &Handler{
		property: property,
		logger:   logger,
	}
}

// Handle GET /api/v1/property
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	config, err := h.property.GetConfig(r.Context())
	if err != nil {
		if errors.Is(err, propertyRepo.ErrConfigNotFound) {
			h.logger.Warn("GET /property - Property not configured")
			handlers.RespondNotFound(w, msgNotConfigured)
			return
		}
		h.logger.Error("GET /property - Failed to get property config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainConfig(config))
}
