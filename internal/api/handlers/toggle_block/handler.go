package toggle_block

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/JMN-BookingService/internal/api/handlers"
	toggleBlock "github.com/m04kA/JMN-BookingService/internal/usecase/toggle_block"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlot        = "некорректный временной слот"
)

type Handler struct {
	useCase ToggleBlockUseCase
	logger  Logger
}

func NewHandler(useCase ToggleBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := vars["date"]

	// Тело опционально: без него переключается весь день
	var req ToggleBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /admin/schedule/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &toggleBlock.Request{
		Date: date,
		Slot: req.Time,
	})
	if err != nil {
		switch {
		case errors.Is(err, toggleBlock.ErrInvalidDate), errors.Is(err, toggleBlock.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/schedule/{date} - Invalid date: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, toggleBlock.ErrInvalidSlot):
			h.logger.Warn("PATCH /admin/schedule/{date} - Invalid slot: date=%s, time=%s", date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("PATCH /admin/schedule/{date} - Failed to toggle block: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/schedule/{date} - Block toggled: date=%s, fullDay=%t", result.Date, result.FullDay)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
