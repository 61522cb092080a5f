package create_maintenance

import (
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	scheduleMaintenance "github.com/dmfaustino/DEI-RoomService/internal/usecase/schedule_maintenance"
)

// CreateMaintenanceRequest HTTP request model
type CreateMaintenanceRequest struct {
	Date      string `json:"date"` // "2025-10-15"
	StartHour int    `json:"startHour"`
}

// MaintenanceResponse HTTP response model
type MaintenanceResponse struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"roomId"`
	RoomName  string `json:"roomName"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateMaintenanceRequest) ToUseCaseRequest(roomID int64) (*scheduleMaintenance.BookRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &scheduleMaintenance.BookRequest{
		RoomID:    roomID,
		Date:      date,
		StartHour: r.StartHour,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleMaintenance.BookResponse) *MaintenanceResponse {
	return &MaintenanceResponse{
		ID:        resp.ID,
		RoomID:    resp.RoomID,
		RoomName:  resp.RoomName,
		Date:      resp.StartTime.Format(domain.DateFormat),
		StartTime: resp.StartTime.Format(domain.TimeFormat),
		EndTime:   resp.EndTime.Format(domain.TimeFormat),
	}
}
