package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinExtensionCount = 0
	MaxExtensionCount = 10
	MaxNoteLength     = 500

	// HorizonCutoffDay день месяца, начиная с которого горизонт бронирования
	// переносится на последний день следующего месяца
	HorizonCutoffDay = 20
)

// Идентификаторы взаимоисключающих добавок (снятие покрытия)
const (
	AddOnRemoveOur   = "remove_our"
	AddOnRemoveOther = "remove_other"
)

// BlockAll значение-маркер поля slots в блокировке на весь день
const BlockAll = "ALL"
