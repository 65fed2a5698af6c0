package domain

import "sort"

// BlockRecord внешняя форма блокировки даты: либо весь день, либо набор слотов.
// Запись с пустым набором слотов не существует — она схлопывается в "не заблокировано".
type BlockRecord struct {
	Date    string // YYYY-MM-DD
	FullDay bool
	Slots   []SlotLabel
}

// BlockState состояние блокировок одной даты
type BlockState struct {
	fullDay bool
	slots   map[SlotLabel]struct{}
}

// IsFullDay returns true if the whole day is blocked
func (s BlockState) IsFullDay() bool {
	return s.fullDay
}

// IsBlocked returns true if the slot is unavailable due to this state
func (s BlockState) IsBlocked(slot SlotLabel) bool {
	if s.fullDay {
		return true
	}
	_, ok := s.slots[slot]
	return ok
}

// Slots возвращает отсортированный список заблокированных слотов
func (s BlockState) Slots() []SlotLabel {
	out := make([]SlotLabel, 0, len(s.slots))
	for slot := range s.slots {
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BlockRegistry упорядоченный реестр блокировок по датам.
// Три состояния даты: не заблокирована (записи нет), заблокированы отдельные слоты,
// заблокирован весь день. Мутации — чистые функции перехода, возвращающие новый реестр.
type BlockRegistry struct {
	byDate map[string]BlockState
}

// NewBlockRegistry создает пустой реестр блокировок
func NewBlockRegistry() BlockRegistry {
	return BlockRegistry{byDate: map[string]BlockState{}}
}

// BlockRegistryFromRecords строит реестр из внешних записей блокировок.
// Записи с пустым набором слотов (и без блокировки всего дня) игнорируются.
func BlockRegistryFromRecords(records []BlockRecord) BlockRegistry {
	reg := NewBlockRegistry()
	for _, rec := range records {
		if rec.FullDay {
			reg.byDate[rec.Date] = BlockState{fullDay: true}
			continue
		}
		if len(rec.Slots) == 0 {
			continue
		}
		slots := make(map[SlotLabel]struct{}, len(rec.Slots))
		for _, slot := range rec.Slots {
			slots[slot] = struct{}{}
		}
		reg.byDate[rec.Date] = BlockState{slots: slots}
	}
	return reg
}

// State возвращает состояние блокировок даты.
// Второе значение false означает "не заблокирована".
func (r BlockRegistry) State(date string) (BlockState, bool) {
	state, ok := r.byDate[date]
	return state, ok
}

// Dates возвращает отсортированный список заблокированных дат
func (r BlockRegistry) Dates() []string {
	out := make([]string, 0, len(r.byDate))
	for date := range r.byDate {
		out = append(out, date)
	}
	sort.Strings(out)
	return out
}

// ToggleDay переключает блокировку всего дня: full-day-blocked ⇄ unblocked.
// Вход в full-day-blocked уничтожает частичную блокировку слотов.
// Повторное применение возвращает исходное состояние.
func (r BlockRegistry) ToggleDay(date string) BlockRegistry {
	next := r.clone()

	if state, ok := next.byDate[date]; ok && state.fullDay {
		delete(next.byDate, date)
		return next
	}

	next.byDate[date] = BlockState{fullDay: true}
	return next
}

// ToggleSlot переключает блокировку одного слота.
// Для даты с блокировкой всего дня переход не определён и состояние не меняется.
// Пустой набор слотов схлопывается в "не заблокирована" (запись удаляется).
// Повторное применение возвращает исходное состояние.
func (r BlockRegistry) ToggleSlot(date string, slot SlotLabel) BlockRegistry {
	next := r.clone()

	state, ok := next.byDate[date]
	if ok && state.fullDay {
		return next
	}

	slots := map[SlotLabel]struct{}{}
	if ok {
		for s := range state.slots {
			slots[s] = struct{}{}
		}
	}

	if _, blocked := slots[slot]; blocked {
		delete(slots, slot)
	} else {
		slots[slot] = struct{}{}
	}

	if len(slots) == 0 {
		delete(next.byDate, date)
		return next
	}

	next.byDate[date] = BlockState{slots: slots}
	return next
}

// Records возвращает внешние записи блокировок, отсортированные по дате
func (r BlockRegistry) Records() []BlockRecord {
	out := make([]BlockRecord, 0, len(r.byDate))
	for _, date := range r.Dates() {
		state := r.byDate[date]
		out = append(out, BlockRecord{
			Date:    date,
			FullDay: state.fullDay,
			Slots:   state.Slots(),
		})
	}
	return out
}

// clone копирует реестр; состояния дат неизменяемы и копируются по значению
func (r BlockRegistry) clone() BlockRegistry {
	next := BlockRegistry{byDate: make(map[string]BlockState, len(r.byDate))}
	for date, state := range r.byDate {
		next.byDate[date] = state
	}
	return next
}
