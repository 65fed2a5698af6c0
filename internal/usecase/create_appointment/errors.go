package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrUnknownAddOn возвращается, когда добавка не найдена в каталоге
	ErrUnknownAddOn = errors.New("create_appointment: unknown add-on")

	// ErrConflictingAddOns возвращается при одновременном выборе обеих добавок снятия
	ErrConflictingAddOns = errors.New("create_appointment: conflicting add-ons")

	// ErrInvalidSlot возвращается, когда слот не входит в расписание студии
	ErrInvalidSlot = errors.New("create_appointment: invalid slot")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid date")

	// ErrDateOutOfWindow возвращается, когда дата вне окна бронирования
	ErrDateOutOfWindow = errors.New("create_appointment: date is outside the booking window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
