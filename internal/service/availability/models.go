package availability

import "github.com/m04kA/JMN-BookingService/internal/domain"

// SlotAvailability доступность одного слота даты
type SlotAvailability struct {
	Slot domain.SlotLabel

	// Available слот можно выбрать: нет блокировки и нет активной записи
	Available bool

	// Blocked слот закрыт оператором (блокировка дня или слота)
	Blocked bool

	// Booked слот занят активной записью
	Booked bool
}

// DayAvailability доступность одной даты окна записи
type DayAvailability struct {
	Date string // YYYY-MM-DD

	// Selectable дату можно выбрать: она в окне записи, день не закрыт
	// целиком и хотя бы один слот свободен
	Selectable bool

	// FullDayBlocked день закрыт оператором целиком
	FullDayBlocked bool

	Slots []SlotAvailability
}

// Snapshot производное состояние доступности, пересчитанное из снимков
// коллекций на момент Today. Содержит все даты окна [Today, Horizon].
type Snapshot struct {
	Today   string // YYYY-MM-DD
	Horizon string // YYYY-MM-DD, последняя доступная дата
	Days    []DayAvailability
}

// Day возвращает доступность даты из снимка
func (s Snapshot) Day(date string) (DayAvailability, bool) {
	for _, day := range s.Days {
		if day.Date == date {
			return day, true
		}
	}
	return DayAvailability{}, false
}

// SelectableDates возвращает даты, доступные для выбора
func (s Snapshot) SelectableDates() []string {
	out := make([]string, 0, len(s.Days))
	for _, day := range s.Days {
		if day.Selectable {
			out = append(out, day.Date)
		}
	}
	return out
}
