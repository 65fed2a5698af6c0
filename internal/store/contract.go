package store

import (
	"context"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	PatchStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	Upsert(ctx context.Context, rec domain.BlockRecord) error
	Delete(ctx context.Context, date string) error
	List(ctx context.Context) ([]domain.BlockRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
