package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Slot) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Client.Name) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Client.Phone) == "" {
		return fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Client.Line) == "" {
		return fmt.Errorf("%w: client line is required", ErrInvalidInput)
	}

	if len(req.Client.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	if req.ExtensionCount < domain.MinExtensionCount || req.ExtensionCount > domain.MaxExtensionCount {
		return fmt.Errorf("%w: extensionCount must be between %d and %d",
			ErrInvalidInput, domain.MinExtensionCount, domain.MaxExtensionCount)
	}

	return nil
}

// validateAddOns проверяет, что все добавки известны каталогу
// и не выбраны обе взаимоисключающие добавки снятия одновременно
func validateAddOns(catalog *domain.Catalog, addOns []string) error {
	seen := make(map[string]bool, len(addOns))

	for _, id := range addOns {
		if _, ok := catalog.AddOnByID(id); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAddOn, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate add-on %s", ErrInvalidInput, id)
		}
		seen[id] = true
	}

	if seen[domain.AddOnRemoveOur] && seen[domain.AddOnRemoveOther] {
		return fmt.Errorf("%w: %s and %s are mutually exclusive",
			ErrConflictingAddOns, domain.AddOnRemoveOur, domain.AddOnRemoveOther)
	}

	return nil
}

// validateDate проверяет формат даты и её попадание в окно бронирования
func validateDate(date string, now time.Time) error {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return fmt.Errorf("%w: expected format %s", ErrInvalidDate, domain.DateFormat)
	}

	if !domain.IsWithinHorizon(parsed, now) {
		return ErrDateOutOfWindow
	}

	return nil
}
