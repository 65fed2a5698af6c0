package block

import "github.com/m04kA/JMN-BookingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor
