package get_maintenance_slots

import (
	"context"

	scheduleMaintenance "github.com/dmfaustino/DEI-RoomService/internal/usecase/schedule_maintenance"
)

type ScheduleMaintenanceUseCase interface {
	OfferSlots(ctx context.Context, req *scheduleMaintenance.OfferSlotsRequest) (*scheduleMaintenance.OfferSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
