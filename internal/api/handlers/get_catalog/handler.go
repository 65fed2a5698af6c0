package get_catalog

import (
	"net/http"

	"github.com/m04kA/JMN-BookingService/internal/api/handlers"
	"github.com/m04kA/JMN-BookingService/internal/domain"
)

type Handler struct {
	catalog *domain.Catalog
	logger  Logger
}

func NewHandler(catalog *domain.Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromDomainCatalog(h.catalog))
}
