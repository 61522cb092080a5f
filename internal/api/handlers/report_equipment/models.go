package report_equipment

import (
	reportEquipment "github.com/dmfaustino/DEI-RoomService/internal/usecase/report_equipment"
)

// ReportEquipmentRequest HTTP request model
type ReportEquipmentRequest struct {
	Broken bool `json:"broken"`
}

// RelocationOutcomeResponse результат перемещения одной затронутой брони
type RelocationOutcomeResponse struct {
	BookingID int64  `json:"bookingId"`
	Relocated bool   `json:"relocated"`
	ToRoom    string `json:"toRoom,omitempty"`
	Message   string `json:"message"`
}

// ReportEquipmentResponse HTTP response model
type ReportEquipmentResponse struct {
	EquipmentID          int64                       `json:"equipmentId"`
	EquipmentName        string                      `json:"equipmentName"`
	RoomID               int64                       `json:"roomId"`
	RoomName             string                      `json:"roomName"`
	Broken               bool                        `json:"broken"`
	Relocations          []RelocationOutcomeResponse `json:"relocations,omitempty"`
	CancelledMaintenance int64                       `json:"cancelledMaintenance,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reportEquipment.Response) *ReportEquipmentResponse {
	out := &ReportEquipmentResponse{
		EquipmentID:          resp.EquipmentID,
		EquipmentName:        resp.EquipmentName,
		RoomID:               resp.RoomID,
		RoomName:             resp.RoomName,
		Broken:               resp.Broken,
		CancelledMaintenance: resp.CancelledMaintenance,
	}
	for _, outcome := range resp.Relocations {
		out.Relocations = append(out.Relocations, RelocationOutcomeResponse{
			BookingID: outcome.BookingID,
			Relocated: outcome.Relocated,
			ToRoom:    outcome.ToRoom,
			Message:   outcome.Message,
		})
	}
	return out
}
