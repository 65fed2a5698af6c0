package block

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/JMN-BookingService/internal/domain"
	"github.com/m04kA/JMN-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с блокировками дат.
//
// Внешняя форма коллекции: колонка slots хранит либо метку domain.BlockAll
// (блокировка всего дня), либо набор заблокированных слотов.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет блокировку даты, перезаписывая существующую.
// Единственная запись на дату — ключ коллекции.
func (r *Repository) Upsert(ctx context.Context, rec domain.BlockRecord) error {
	query, args, err := psqlbuilder.Insert("blocks").
		Columns("block_date", "slots").
		Values(rec.Date, pq.Array(encodeSlots(rec))).
		Suffix("ON CONFLICT (block_date) DO UPDATE SET slots = EXCLUDED.slots").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет блокировку даты.
// Отсутствующая запись ошибкой не считается: пустая блокировка
// и есть состояние "не заблокировано".
func (r *Repository) Delete(ctx context.Context, date string) error {
	query, args, err := psqlbuilder.Delete("blocks").
		Where(squirrel.Eq{"block_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// List возвращает полный снимок коллекции блокировок, отсортированный по дате
func (r *Repository) List(ctx context.Context) ([]domain.BlockRecord, error) {
	query, args, err := psqlbuilder.Select("block_date", "slots").
		From("blocks").
		OrderBy("block_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.BlockRecord, 0)
	for rows.Next() {
		var (
			blockDate time.Time
			slots     pq.StringArray
		)

		if err := rows.Scan(&blockDate, &slots); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		records = append(records, decodeRecord(blockDate.Format(domain.DateFormat), slots))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// encodeSlots кодирует блокировку во внешнюю форму колонки slots:
// блокировка всего дня — единственная метка domain.BlockAll
func encodeSlots(rec domain.BlockRecord) []string {
	if rec.FullDay {
		return []string{domain.BlockAll}
	}

	slots := make([]string, 0, len(rec.Slots))
	for _, slot := range rec.Slots {
		slots = append(slots, string(slot))
	}
	return slots
}

// decodeRecord восстанавливает блокировку из внешней формы.
// Метка domain.BlockAll среди слотов означает блокировку всего дня.
func decodeRecord(date string, slots []string) domain.BlockRecord {
	rec := domain.BlockRecord{Date: date}

	for _, slot := range slots {
		if slot == domain.BlockAll {
			rec.FullDay = true
			rec.Slots = nil
			return rec
		}
		rec.Slots = append(rec.Slots, domain.SlotLabel(slot))
	}

	return rec
}
