package create_maintenance

import (
	"context"

	scheduleMaintenance "github.com/dmfaustino/DEI-RoomService/internal/usecase/schedule_maintenance"
)

type ScheduleMaintenanceUseCase interface {
	Book(ctx context.Context, req *scheduleMaintenance.BookRequest) (*scheduleMaintenance.BookResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
