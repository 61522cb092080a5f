package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	"github.com/dmfaustino/DEI-RoomService/pkg/psqlbuilder"
	"github.com/dmfaustino/DEI-RoomService/pkg/txmanager"
)

var selectColumns = []string{
	"id",
	"room_id",
	"teacher_id",
	"activity_type",
	"activity_name",
	"required_capacity",
	"requires_equipment",
	"start_time",
	"end_time",
	"original_start_time",
	"original_end_time",
	"is_relocated",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Последовательность "FindOverlapping + Create" для одной комнаты обязана
// выполняться в сериализуемой транзакции (через txmanager), иначе возможно
// двойное бронирование.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"room_id",
			"teacher_id",
			"activity_type",
			"activity_name",
			"required_capacity",
			"requires_equipment",
			"start_time",
			"end_time",
		).
		Values(
			b.RoomID,
			b.TeacherID,
			b.ActivityType,
			b.ActivityName,
			b.RequiredCapacity,
			b.RequiresEquipment,
			b.StartTime,
			b.EndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// FindOverlapping возвращает бронирования комнаты, пересекающиеся с
// полуоткрытым интервалом [start, end). Граничащие интервалы не считаются
// пересечением: existing.start < end AND existing.end > start.
// Внутри транзакции добавляется FOR UPDATE - это и есть эксклюзивная
// блокировка комнаты на время последовательности "проверка + запись".
func (r *Repository) FindOverlapping(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByRoomAndDate получает все бронирования комнаты на конкретную дату,
// отсортированные по времени начала
func (r *Repository) GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByTeacher получает все бронирования преподавателя,
// отсортированные по времени начала
func (r *Repository) GetByTeacher(ctx context.Context, teacherID int64) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("bookings").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeacher - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeacher - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// FindEquipmentDependentByRoom возвращает будущие бронирования комнаты,
// которым требуется оборудование (не maintenance). Используется при
// поломке оборудования для автоматического переноса.
func (r *Repository) FindEquipmentDependentByRoom(ctx context.Context, roomID int64, from time.Time) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"requires_equipment": true}).
		Where(squirrel.NotEq{"activity_type": domain.ActivityMaintenance}).
		Where(squirrel.GtOrEq{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindEquipmentDependentByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindEquipmentDependentByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateRoom переносит бронирование в другую комнату.
// Снимок original_start_time/original_end_time делается ровно один раз:
// COALESCE сохраняет значения первого переноса при повторных.
// Временное окно брони не меняется.
func (r *Repository) UpdateRoom(ctx context.Context, id int64, roomID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("room_id", roomID).
		Set("is_relocated", true).
		Set("original_start_time", squirrel.Expr("COALESCE(original_start_time, start_time)")).
		Set("original_end_time", squirrel.Expr("COALESCE(original_end_time, end_time)")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateRoom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRoom - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRoom - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление по явной отмене)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteMaintenanceByRoom удаляет будущие maintenance-брони комнаты.
// Вызывается при починке оборудования: запланированные ремонтные слоты
// больше не нужны. Удаляются только maintenance-брони.
func (r *Repository) DeleteMaintenanceByRoom(ctx context.Context, roomID int64, from time.Time) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"activity_type": domain.ActivityMaintenance}).
		Where(squirrel.GtOrEq{"start_time": from}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMaintenanceByRoom - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMaintenanceByRoom - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMaintenanceByRoom - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var teacherID sql.NullInt64
	var origStart, origEnd, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.RoomID,
		&teacherID,
		&b.ActivityType,
		&b.ActivityName,
		&b.RequiredCapacity,
		&b.RequiresEquipment,
		&b.StartTime,
		&b.EndTime,
		&origStart,
		&origEnd,
		&b.IsRelocated,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if teacherID.Valid {
		b.TeacherID = &teacherID.Int64
	}
	if origStart.Valid {
		b.OriginalStartTime = &origStart.Time
	}
	if origEnd.Valid {
		b.OriginalEndTime = &origEnd.Time
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
