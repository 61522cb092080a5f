package get_room_schedule

import (
	"context"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/service/bookings/models"
)

type BookingService interface {
	GetRoomSchedule(ctx context.Context, roomID int64, date time.Time) (*models.RoomScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
