package create_booking

import (
	"context"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	"github.com/dmfaustino/DEI-RoomService/internal/integrations/staffservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// StaffServiceClient интерфейс клиента StaffService
type StaffServiceClient interface {
	GetTeacher(ctx context.Context, teacherID int64) (*staffservice.Teacher, error)
	GetCourse(ctx context.Context, code string) (*staffservice.Course, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
