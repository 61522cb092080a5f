package get_available_slots

import (
	"context"
	"math/rand"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат (read-only индекс)
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindOverlapping возвращает брони комнаты, пересекающиеся с [start, end)
	FindOverlapping(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.Booking, error)
}

// RandProvider интерфейс источника случайности (для тестирования)
type RandProvider interface {
	Intn(n int) int
	Perm(n int) []int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
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
