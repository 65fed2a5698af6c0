package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/JMN-BookingService/internal/api/handlers"
	createAppointment "github.com/m04kA/JMN-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные записи"
	msgServiceNotFound    = "услуга не найдена"
	msgUnknownAddOn       = "неизвестная добавка"
	msgConflictingAddOns  = "добавки снятия взаимоисключающие, выберите одну"
	msgInvalidSlot        = "некорректный временной слот"
	msgInvalidDate        = "некорректная дата записи, ожидается YYYY-MM-DD"
	msgDateOutOfWindow    = "дата вне доступного окна записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrUnknownAddOn):
			h.logger.Warn("POST /appointments - Unknown add-on: service_id=%s", req.ServiceID)
			handlers.RespondBadRequest(w, msgUnknownAddOn)

		case errors.Is(err, createAppointment.ErrConflictingAddOns):
			h.logger.Warn("POST /appointments - Conflicting add-ons: service_id=%s", req.ServiceID)
			handlers.RespondBadRequest(w, msgConflictingAddOns)

		case errors.Is(err, createAppointment.ErrInvalidSlot):
			h.logger.Warn("POST /appointments - Invalid slot: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrDateOutOfWindow):
			h.logger.Warn("POST /appointments - Date out of booking window: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: service_id=%s, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, date=%s, time=%s",
		result.ID, result.Date, result.Slot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
