package schedule_maintenance

import (
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// OfferSlotsRequest модель запроса вариантов окон обслуживания
type OfferSlotsRequest struct {
	RoomID      int64
	HorizonDays int // Глубина поиска в днях от завтрашнего дня; 0 = по умолчанию
}

// OfferSlotsResponse модель ответа с предложенными окнами
type OfferSlotsResponse struct {
	RoomID   int64
	RoomName string
	Slots    []domain.Slot
}

// BookRequest модель запроса на бронирование окна обслуживания.
// Окна обслуживания всегда часовые.
type BookRequest struct {
	RoomID    int64
	Date      time.Time
	StartHour int
}

// BookResponse модель ответа с созданной бронью обслуживания
type BookResponse struct {
	ID        int64
	RoomID    int64
	RoomName  string
	StartTime time.Time
	EndTime   time.Time
}
