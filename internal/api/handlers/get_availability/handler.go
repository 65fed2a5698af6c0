package get_availability

import (
	"net/http"

	"github.com/m04kA/JMN-BookingService/internal/api/handlers"
)

type Handler struct {
	resolver AvailabilityResolver
	logger   Logger
}

func NewHandler(resolver AvailabilityResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snap := h.resolver.Snapshot()
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}
