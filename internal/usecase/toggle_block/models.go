package toggle_block

// Request модель запроса на переключение блокировки.
// Пустой Slot означает переключение блокировки всего дня.
type Request struct {
	Date string // Дата (YYYY-MM-DD)
	Slot string // Метка слота; пусто — переключить весь день
}

// Response итоговое состояние блокировок даты после переключения
type Response struct {
	Date    string   // Дата
	FullDay bool     // Заблокирован ли весь день
	Slots   []string // Заблокированные слоты (пусто при FullDay или полном снятии)
}
