package report_equipment

import (
	"context"

	reportEquipment "github.com/dmfaustino/DEI-RoomService/internal/usecase/report_equipment"
)

type ReportEquipmentUseCase interface {
	Execute(ctx context.Context, req *reportEquipment.Request) (*reportEquipment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
