package schedule_maintenance

import (
	"context"
	"math/rand"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.Booking, error)
	GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// RandProvider интерфейс источника случайности (для тестирования)
type RandProvider interface {
	Intn(n int) int
	Perm(n int) []int
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

// RealRandProvider реальный источник случайности для production
type RealRandProvider struct {
	rng *rand.Rand
}

// NewRealRandProvider создает источник случайности с seed от текущего времени
func NewRealRandProvider() *RealRandProvider {
	return &RealRandProvider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Intn возвращает случайное число в [0, n)
func (p *RealRandProvider) Intn(n int) int { return p.rng.Intn(n) }

// Perm возвращает случайную перестановку [0, n)
func (p *RealRandProvider) Perm(n int) []int { return p.rng.Perm(n) }
