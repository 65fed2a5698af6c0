package availability

import (
	"time"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

// Compute вычисляет доступность всех дат окна записи из снимков коллекций.
// Чистая функция: каждый вызов строит результат с нуля, ничего не
// дорисовывая к предыдущему состоянию.
//
// Дата недоступна целиком, если она вне окна [сегодня, горизонт], закрыта
// оператором на весь день или все фиксированные слоты заняты (блокировкой
// либо активной записью). Слот недоступен при блокировке дня, блокировке
// слота или активной записи на пару (дата, слот); отменённые записи слоты
// не занимают.
func Compute(
	today time.Time,
	slots []domain.SlotLabel,
	registry domain.BlockRegistry,
	appointments []*domain.Appointment,
) Snapshot {
	horizon := domain.HorizonEnd(today)

	occupied := occupancyIndex(appointments)

	snapshot := Snapshot{
		Today:   today.Format(domain.DateFormat),
		Horizon: horizon.Format(domain.DateFormat),
	}

	for day := truncateToDay(today); !day.After(horizon); day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateFormat)
		state, blocked := registry.State(date)

		dayAvail := DayAvailability{
			Date:           date,
			FullDayBlocked: blocked && state.IsFullDay(),
			Slots:          make([]SlotAvailability, 0, len(slots)),
		}

		freeSlots := 0
		for _, slot := range slots {
			slotBlocked := blocked && state.IsBlocked(slot)
			slotBooked := occupied[date][slot]

			available := !slotBlocked && !slotBooked
			if available {
				freeSlots++
			}

			dayAvail.Slots = append(dayAvail.Slots, SlotAvailability{
				Slot:      slot,
				Available: available,
				Blocked:   slotBlocked,
				Booked:    slotBooked,
			})
		}

		dayAvail.Selectable = !dayAvail.FullDayBlocked && freeSlots > 0

		snapshot.Days = append(snapshot.Days, dayAvail)
	}

	return snapshot
}

// occupancyIndex строит индекс занятости (дата → слот → занят)
// по активным записям
func occupancyIndex(appointments []*domain.Appointment) map[string]map[domain.SlotLabel]bool {
	index := map[string]map[domain.SlotLabel]bool{}
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if index[appt.Date] == nil {
			index[appt.Date] = map[domain.SlotLabel]bool{}
		}
		index[appt.Date][appt.Slot] = true
	}
	return index
}

// truncateToDay обнуляет время, чтобы сравнивать только даты
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
