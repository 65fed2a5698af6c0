package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/JMN-BookingService/internal/domain"
	"github.com/m04kA/JMN-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет новую запись.
// Момент создания фиксируется на стороне БД (DEFAULT NOW) и возвращается
// через RETURNING — клиентское время не используется.
func (r *Repository) Insert(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	addons := appt.AddOns
	if addons == nil {
		addons = []string{}
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"service_id",
			"service_name",
			"price",
			"is_start_price",
			"addons",
			"extension_count",
			"booking_date",
			"slot",
			"client_name",
			"client_phone",
			"client_line",
			"client_note",
			"status",
		).
		Values(
			appt.ID,
			appt.ServiceID,
			appt.ServiceName,
			appt.Price,
			appt.IsStartPrice,
			pq.Array(addons),
			appt.ExtensionCount,
			appt.Date,
			appt.Slot,
			appt.Client.Name,
			appt.Client.Phone,
			appt.Client.Line,
			appt.Client.Note,
			appt.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt time.Time
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query, args, err := appointmentSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	appt, err := scanAppointment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// List возвращает полный снимок коллекции записей, сначала новые.
// Порядок соответствует списку в консоли оператора.
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	query, args, err := appointmentSelect().
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// PatchStatus обновляет статус записи
func (r *Repository) PatchStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: PatchStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: PatchStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: PatchStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// appointmentSelect базовый SELECT со всеми колонками записи
func appointmentSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"service_id",
		"service_name",
		"price",
		"is_start_price",
		"addons",
		"extension_count",
		"booking_date",
		"slot",
		"client_name",
		"client_phone",
		"client_line",
		"client_note",
		"status",
		"created_at",
	).From("appointments")
}

// scanAppointment сканирует одну строку в доменную модель
func scanAppointment(scan func(dest ...interface{}) error) (*domain.Appointment, error) {
	var (
		appt        domain.Appointment
		addons      pq.StringArray
		bookingDate time.Time
	)

	err := scan(
		&appt.ID,
		&appt.ServiceID,
		&appt.ServiceName,
		&appt.Price,
		&appt.IsStartPrice,
		&addons,
		&appt.ExtensionCount,
		&bookingDate,
		&appt.Slot,
		&appt.Client.Name,
		&appt.Client.Phone,
		&appt.Client.Line,
		&appt.Client.Note,
		&appt.Status,
		&appt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.AddOns = []string(addons)
	appt.Date = bookingDate.Format(domain.DateFormat)

	return &appt, nil
}
