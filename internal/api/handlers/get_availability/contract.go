package get_availability

import "github.com/m04kA/JMN-BookingService/internal/service/availability"

// AvailabilityResolver интерфейс резолвера доступности
type AvailabilityResolver interface {
	Snapshot() availability.Snapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
