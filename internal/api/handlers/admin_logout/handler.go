package admin_logout

import (
	"net/http"

	"github.com/m04kA/JMN-BookingService/internal/api/handlers"
	"github.com/m04kA/JMN-BookingService/internal/api/middleware"
)

const msgMissingSession = "отсутствует сессионный токен"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetSessionToken(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/logout - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	h.service.Logout(token)

	h.logger.Info("POST /admin/logout - Session terminated")
	w.WriteHeader(http.StatusNoContent)
}
