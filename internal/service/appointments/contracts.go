package appointments

import (
	"context"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

// Store интерфейс границы персистентности для работы с записями
type Store interface {
	GetAppointment(ctx context.Context, id string) (*domain.Appointment, error)
	ListAppointments(ctx context.Context) ([]*domain.Appointment, error)
	PatchAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
