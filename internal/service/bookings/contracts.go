package bookings

import (
	"context"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	"github.com/dmfaustino/DEI-RoomService/internal/integrations/staffservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error)
	GetByTeacher(ctx context.Context, teacherID int64) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// StaffServiceClient интерфейс клиента StaffService
type StaffServiceClient interface {
	GetTeacher(ctx context.Context, teacherID int64) (*staffservice.Teacher, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
