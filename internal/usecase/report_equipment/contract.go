package report_equipment

import (
	"context"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	"github.com/dmfaustino/DEI-RoomService/internal/usecase/relocate_booking"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByEquipmentID(ctx context.Context, equipmentID int64) (*domain.Room, error)
	SetEquipmentBroken(ctx context.Context, equipmentID int64, broken bool) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindEquipmentDependentByRoom возвращает будущие брони комнаты,
	// которым требуется исправное оборудование
	FindEquipmentDependentByRoom(ctx context.Context, roomID int64, from time.Time) ([]*domain.Booking, error)
	// DeleteMaintenanceByRoom удаляет будущие брони обслуживания комнаты
	DeleteMaintenanceByRoom(ctx context.Context, roomID int64, from time.Time) (int64, error)
}

// Relocator интерфейс перемещения бронирований (каскад при поломке)
type Relocator interface {
	Execute(ctx context.Context, req *relocate_booking.Request) (*relocate_booking.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
