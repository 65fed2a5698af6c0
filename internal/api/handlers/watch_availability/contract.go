package watch_availability

import "github.com/m04kA/JMN-BookingService/internal/service/availability"

// AvailabilityFeed интерфейс подписки на снимки доступности
type AvailabilityFeed interface {
	Subscribe() (<-chan availability.Snapshot, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
