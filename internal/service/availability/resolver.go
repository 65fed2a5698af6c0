package availability

import (
	"context"
	"sync"

	"github.com/m04kA/JMN-BookingService/internal/domain"
	"github.com/m04kA/JMN-BookingService/internal/infra/feed"
)

// Resolver реактивно пересчитывает доступность дат и слотов.
//
// Держит последние снимки обеих коллекций и на каждом push любой из них
// пересчитывает производное состояние целиком (see Compute) и рассылает его
// своим подписчикам. Устаревший снимок не переживает противоречащее ему
// обновление: новое состояние всегда строится от последних данных.
type Resolver struct {
	slots        []domain.SlotLabel
	timeProvider TimeProvider
	log          Logger

	mu           sync.RWMutex
	appointments []*domain.Appointment
	registry     domain.BlockRegistry

	out *feed.Broker[Snapshot]
}

// NewResolver создает resolver для фиксированного множества слотов
func NewResolver(slots []domain.SlotLabel, log Logger) *Resolver {
	return &Resolver{
		slots:        slots,
		timeProvider: &RealTimeProvider{},
		log:          log,
		registry:     domain.NewBlockRegistry(),
		out:          feed.NewBroker[Snapshot](),
	}
}

// Run обрабатывает push-снимки коллекций до отмены контекста.
// Запускается в отдельной горутине из main.
func (r *Resolver) Run(
	ctx context.Context,
	appointments <-chan []*domain.Appointment,
	blocks <-chan []domain.BlockRecord,
) {
	for {
		select {
		case <-ctx.Done():
			return

		case snapshot, ok := <-appointments:
			if !ok {
				return
			}
			r.mu.Lock()
			r.appointments = snapshot
			r.mu.Unlock()
			r.publish()

		case records, ok := <-blocks:
			if !ok {
				return
			}
			r.mu.Lock()
			r.registry = domain.BlockRegistryFromRecords(records)
			r.mu.Unlock()
			r.publish()
		}
	}
}

// Snapshot вычисляет доступность от текущего момента и последних снимков.
// Горизонт пересчитывается при каждом вызове и не кэшируется через границу суток.
func (r *Resolver) Snapshot() Snapshot {
	r.mu.RLock()
	appointments := r.appointments
	registry := r.registry
	r.mu.RUnlock()

	return Compute(r.timeProvider.Now(), r.slots, registry, appointments)
}

// IsSlotAvailable сообщает, доступен ли слот даты для выбора
func (r *Resolver) IsSlotAvailable(date string, slot domain.SlotLabel) bool {
	day, ok := r.Snapshot().Day(date)
	if !ok {
		return false
	}
	for _, s := range day.Slots {
		if s.Slot == slot {
			return s.Available
		}
	}
	return false
}

// IsDateSelectable сообщает, доступна ли дата для выбора
func (r *Resolver) IsDateSelectable(date string) bool {
	day, ok := r.Snapshot().Day(date)
	return ok && day.Selectable
}

// Subscribe подписывает на пересчитанные снимки доступности.
// Функцию освобождения обязательно вызывать при завершении подписчика.
func (r *Resolver) Subscribe() (<-chan Snapshot, func()) {
	return r.out.Subscribe()
}

// publish пересчитывает доступность и рассылает подписчикам
func (r *Resolver) publish() {
	snapshot := r.Snapshot()
	r.log.Info("availability: recomputed, %d selectable dates until %s",
		len(snapshot.SelectableDates()), snapshot.Horizon)
	r.out.Publish(snapshot)
}
