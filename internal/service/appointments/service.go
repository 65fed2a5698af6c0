package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/JMN-BookingService/internal/domain"
	apptRepo "github.com/m04kA/JMN-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/JMN-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с существующими записями (консоль оператора)
type Service struct {
	store Store
	log   Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(store Store, log Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.log.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.log.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.log.Error("GetByID: store error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List возвращает все записи, сначала новые.
// Отменённые записи не удаляются и остаются в списке.
func (s *Service) List(ctx context.Context) (*models.AppointmentListResponse, error) {
	s.log.Info("List: fetching appointments")

	appointments, err := s.store.ListAppointments(ctx)
	if err != nil {
		s.log.Error("List: store error: %v", err)
		return nil, fmt.Errorf("%w: List - store error: %v", ErrInternal, err)
	}

	s.log.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись: pending → cancelled.
// Переход терминальный и идемпотентный: повторная отмена — no-op.
// Освобождение слота происходит через обычный push снимка — занятость
// считается только по неотменённым записям.
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.log.Info("Cancel: cancelling appointment id=%s", id)

	appt, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.log.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.log.Error("Cancel: store error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - store error: %v", ErrInternal, err)
	}

	if appt.IsCancelled() {
		s.log.Info("Cancel: appointment id=%s already cancelled, no-op", id)
		return nil
	}

	if err := s.store.PatchAppointmentStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.log.Warn("Cancel: appointment id=%s not found during patch", id)
			return ErrAppointmentNotFound
		}
		s.log.Error("Cancel: store error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - store error: %v", ErrInternal, err)
	}

	s.log.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}
