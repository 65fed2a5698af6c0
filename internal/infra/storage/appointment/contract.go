package appointment

import "github.com/m04kA/JMN-BookingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics:
// репозиторий одинаково работает с *sql.DB и обёрткой с метриками
type DBExecutor = dbmetrics.DBExecutor
