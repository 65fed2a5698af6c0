package toggle_block

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("toggle_block: invalid input data")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("toggle_block: invalid date")

	// ErrInvalidSlot возвращается, когда слот не входит в расписание студии
	ErrInvalidSlot = errors.New("toggle_block: invalid slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("toggle_block: internal error")
)
