package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	"github.com/dmfaustino/DEI-RoomService/pkg/psqlbuilder"
	"github.com/dmfaustino/DEI-RoomService/pkg/txmanager"
)

// Repository репозиторий комнат и их оборудования.
// Выполняет роль read-only индекса комнат (RoomIndex) и реестра
// состояния оборудования (EquipmentRegistry).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все комнаты вместе с их оборудованием.
// Порядок стабильный (по id), на нем держится разрешение ничьих
// при сортировке по вместимости.
func (r *Repository) List(ctx context.Context) ([]domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity").
		From("rooms").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	index := make(map[int64]int)

	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity); err != nil {
			return nil, fmt.Errorf("%w: List - scan room: %v", ErrScanRow, err)
		}
		index[room.ID] = len(rooms)
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if err := r.attachEquipment(ctx, executor, rooms, index); err != nil {
		return nil, err
	}

	return rooms, nil
}

// GetByID возвращает комнату с оборудованием по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.Name, &room.Capacity)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	rooms := []domain.Room{room}
	if err := r.attachEquipment(ctx, executor, rooms, map[int64]int{room.ID: 0}); err != nil {
		return nil, err
	}

	return &rooms[0], nil
}

// GetByEquipmentID возвращает комнату, владеющую указанным оборудованием
func (r *Repository) GetByEquipmentID(ctx context.Context, equipmentID int64) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("room_id").
		From("equipment").
		Where(squirrel.Eq{"id": equipmentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEquipmentID - build select query: %v", ErrBuildQuery, err)
	}

	var roomID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&roomID)
	if err == sql.ErrNoRows {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEquipmentID - scan room_id: %v", ErrScanRow, err)
	}

	return r.GetByID(ctx, roomID)
}

// SetEquipmentBroken меняет состояние оборудования (сломано/исправно)
func (r *Repository) SetEquipmentBroken(ctx context.Context, equipmentID int64, broken bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("equipment").
		Set("is_broken", broken).
		Where(squirrel.Eq{"id": equipmentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetEquipmentBroken - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetEquipmentBroken - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetEquipmentBroken - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

// attachEquipment дозагружает оборудование для набора комнат
func (r *Repository) attachEquipment(ctx context.Context, executor DBExecutor, rooms []domain.Room, index map[int64]int) error {
	if len(rooms) == 0 {
		return nil
	}

	roomIDs := make([]int64, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}

	query, args, err := psqlbuilder.Select("id", "room_id", "name", "is_broken").
		From("equipment").
		Where(squirrel.Eq{"room_id": roomIDs}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.RoomID, &eq.Name, &eq.IsBroken); err != nil {
			return fmt.Errorf("%w: attachEquipment - scan equipment: %v", ErrScanRow, err)
		}
		if i, ok := index[eq.RoomID]; ok {
			rooms[i].Equipment = append(rooms[i].Equipment, eq)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachEquipment - rows error: %v", ErrScanRow, err)
	}

	return nil
}
