package create_appointment

import "time"

// ClientInfo контактные данные клиента
type ClientInfo struct {
	Name  string // Имя клиента
	Phone string // Телефон
	Line  string // LINE ID
	Note  string // Пожелания (опционально)
}

// Request модель запроса на создание записи
type Request struct {
	ServiceID      string     // Идентификатор услуги из каталога
	AddOns         []string   // Идентификаторы выбранных добавок
	ExtensionCount int        // Количество наращиваемых ногтей
	Date           string     // Дата записи (YYYY-MM-DD)
	Slot           string     // Метка слота (например, "10:00")
	Client         ClientInfo // Контактные данные клиента
}

// Response модель ответа с созданной записью
type Response struct {
	ID             string   // ID созданной записи
	ServiceID      string   // Идентификатор услуги
	ServiceName    string   // Название услуги
	Price          int64    // Итоговая цена
	IsStartPrice   bool     // Признак "цена от"
	AddOns         []string // Выбранные добавки
	ExtensionCount int      // Количество наращиваемых ногтей
	Date           string   // Дата записи
	Slot           string   // Метка слота
	Client         ClientInfo
	Status         string    // Статус записи
	CreatedAt      time.Time // Время создания
}
