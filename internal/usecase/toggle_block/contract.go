package toggle_block

import (
	"context"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

// BlockStore интерфейс хранилища блокировок расписания
type BlockStore interface {
	ListBlocks(ctx context.Context) ([]domain.BlockRecord, error)
	UpsertBlock(ctx context.Context, rec domain.BlockRecord) error
	DeleteBlock(ctx context.Context, date string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
