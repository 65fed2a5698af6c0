package store

import (
	"context"
	"fmt"

	"github.com/m04kA/JMN-BookingService/internal/domain"
	"github.com/m04kA/JMN-BookingService/internal/infra/feed"
)

// Имена каналов PostgreSQL NOTIFY, на которые триггеры миграций шлют
// уведомления об изменениях коллекций
const (
	ChannelAppointments = "jmn_appointments_changed"
	ChannelBlocks       = "jmn_blocks_changed"
)

// Store граница персистентности ядра: две коллекции — записи и блокировки.
// Каждая коллекция отдает подписчикам полные снимки; любая успешная запись
// немедленно перечитывает коллекцию и рассылает новый снимок. Уведомления
// LISTEN/NOTIFY (see feed.Listener) запускают то же перечитывание, когда
// коллекцию меняет другой процесс.
type Store struct {
	apptRepo  AppointmentRepository
	blockRepo BlockRepository
	log       Logger

	appointments *feed.Broker[[]*domain.Appointment]
	blocks       *feed.Broker[[]domain.BlockRecord]
}

// New создает store поверх репозиториев коллекций
func New(apptRepo AppointmentRepository, blockRepo BlockRepository, log Logger) *Store {
	return &Store{
		apptRepo:     apptRepo,
		blockRepo:    blockRepo,
		log:          log,
		appointments: feed.NewBroker[[]*domain.Appointment](),
		blocks:       feed.NewBroker[[]domain.BlockRecord](),
	}
}

// Start загружает начальные снимки обеих коллекций.
// Ошибка здесь — отказ инициализации: без снимков сервис неработоспособен.
func (s *Store) Start(ctx context.Context) error {
	if err := s.refreshAppointments(ctx); err != nil {
		return fmt.Errorf("store: initial appointments snapshot: %w", err)
	}
	if err := s.refreshBlocks(ctx); err != nil {
		return fmt.Errorf("store: initial blocks snapshot: %w", err)
	}
	return nil
}

// SubscribeAppointments подписывает на снимки коллекции записей.
// Функцию освобождения обязательно вызывать при завершении подписчика.
func (s *Store) SubscribeAppointments() (<-chan []*domain.Appointment, func()) {
	return s.appointments.Subscribe()
}

// SubscribeBlocks подписывает на снимки коллекции блокировок
func (s *Store) SubscribeBlocks() (<-chan []domain.BlockRecord, func()) {
	return s.blocks.Subscribe()
}

// InsertAppointment сохраняет новую запись и рассылает обновлённый снимок
func (s *Store) InsertAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created, err := s.apptRepo.Insert(ctx, appt)
	if err != nil {
		return nil, err
	}

	if err := s.refreshAppointments(ctx); err != nil {
		// Запись уже принята; подписчики догонят по NOTIFY
		s.log.Error("store: failed to refresh appointments after insert: %v", err)
	}

	return created, nil
}

// GetAppointment получает запись по ID
func (s *Store) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.apptRepo.GetByID(ctx, id)
}

// ListAppointments возвращает текущий снимок коллекции записей
func (s *Store) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	return s.apptRepo.List(ctx)
}

// PatchAppointmentStatus обновляет статус записи и рассылает обновлённый снимок
func (s *Store) PatchAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	if err := s.apptRepo.PatchStatus(ctx, id, status); err != nil {
		return err
	}

	if err := s.refreshAppointments(ctx); err != nil {
		s.log.Error("store: failed to refresh appointments after patch: %v", err)
	}

	return nil
}

// ListBlocks возвращает текущий снимок коллекции блокировок
func (s *Store) ListBlocks(ctx context.Context) ([]domain.BlockRecord, error) {
	return s.blockRepo.List(ctx)
}

// UpsertBlock сохраняет блокировку даты и рассылает обновлённый снимок
func (s *Store) UpsertBlock(ctx context.Context, rec domain.BlockRecord) error {
	if err := s.blockRepo.Upsert(ctx, rec); err != nil {
		return err
	}

	if err := s.refreshBlocks(ctx); err != nil {
		s.log.Error("store: failed to refresh blocks after upsert: %v", err)
	}

	return nil
}

// DeleteBlock удаляет блокировку даты и рассылает обновлённый снимок
func (s *Store) DeleteBlock(ctx context.Context, date string) error {
	if err := s.blockRepo.Delete(ctx, date); err != nil {
		return err
	}

	if err := s.refreshBlocks(ctx); err != nil {
		s.log.Error("store: failed to refresh blocks after delete: %v", err)
	}

	return nil
}

// HandleNotification обрабатывает уведомление об изменении коллекции.
// Пустое имя канала означает ресинхронизацию всех коллекций
// (после переподключения listener).
func (s *Store) HandleNotification(ctx context.Context, channel string) {
	switch channel {
	case ChannelAppointments:
		if err := s.refreshAppointments(ctx); err != nil {
			s.log.Error("store: failed to refresh appointments on notify: %v", err)
		}
	case ChannelBlocks:
		if err := s.refreshBlocks(ctx); err != nil {
			s.log.Error("store: failed to refresh blocks on notify: %v", err)
		}
	case "":
		if err := s.refreshAppointments(ctx); err != nil {
			s.log.Error("store: failed to resync appointments: %v", err)
		}
		if err := s.refreshBlocks(ctx); err != nil {
			s.log.Error("store: failed to resync blocks: %v", err)
		}
	default:
		s.log.Warn("store: notification on unknown channel %q", channel)
	}
}

// refreshAppointments перечитывает коллекцию записей и публикует снимок
func (s *Store) refreshAppointments(ctx context.Context) error {
	snapshot, err := s.apptRepo.List(ctx)
	if err != nil {
		return err
	}
	s.appointments.Publish(snapshot)
	return nil
}

// refreshBlocks перечитывает коллекцию блокировок и публикует снимок
func (s *Store) refreshBlocks(ctx context.Context) error {
	snapshot, err := s.blockRepo.List(ctx)
	if err != nil {
		return err
	}
	s.blocks.Publish(snapshot)
	return nil
}
