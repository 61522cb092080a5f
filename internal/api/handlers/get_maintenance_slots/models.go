package get_maintenance_slots

import (
	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	scheduleMaintenance "github.com/dmfaustino/DEI-RoomService/internal/usecase/schedule_maintenance"
)

// MaintenanceSlotResponse HTTP модель окна обслуживания
type MaintenanceSlotResponse struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "13:00"
	EndTime   string `json:"endTime"`   // "14:00"
	IsLunch   bool   `json:"isLunch"`
}

// MaintenanceSlotsResponse HTTP модель ответа с предложенными окнами
type MaintenanceSlotsResponse struct {
	RoomID   int64                     `json:"roomId"`
	RoomName string                    `json:"roomName"`
	Slots    []MaintenanceSlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleMaintenance.OfferSlotsResponse) *MaintenanceSlotsResponse {
	out := &MaintenanceSlotsResponse{
		RoomID:   resp.RoomID,
		RoomName: resp.RoomName,
		Slots:    make([]MaintenanceSlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, MaintenanceSlotResponse{
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: s.StartTime.Format(domain.TimeFormat),
			EndTime:   s.EndTime.Format(domain.TimeFormat),
			IsLunch:   s.StartTime.Hour() == domain.LunchHour,
		})
	}
	return out
}
