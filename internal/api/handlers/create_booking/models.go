package create_booking

import (
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	createBooking "github.com/dmfaustino/DEI-RoomService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID           int64   `json:"roomId"`
	Date             string  `json:"date"` // "2025-10-15"
	StartHour        int     `json:"startHour"`
	DurationHours    int     `json:"durationHours"`
	ActivityType     string  `json:"activityType"` // lecture | meeting
	CourseCode       *string `json:"courseCode,omitempty"`
	RequiredCapacity *int    `json:"requiredCapacity,omitempty"`
	NeedsEquipment   bool    `json:"needsEquipment"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                int64  `json:"id"`
	RoomID            int64  `json:"roomId"`
	RoomName          string `json:"roomName"`
	TeacherID         int64  `json:"teacherId"`
	ActivityType      string `json:"activityType"`
	ActivityName      string `json:"activityName"`
	RequiredCapacity  int    `json:"requiredCapacity"`
	RequiresEquipment bool   `json:"requiresEquipment"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	CreatedAt         string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(teacherID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TeacherID:        teacherID,
		RoomID:           r.RoomID,
		Date:             date,
		StartHour:        r.StartHour,
		DurationHours:    r.DurationHours,
		ActivityType:     domain.ActivityType(r.ActivityType),
		CourseCode:       r.CourseCode,
		RequiredCapacity: r.RequiredCapacity,
		NeedsEquipment:   r.NeedsEquipment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		RoomID:            resp.RoomID,
		RoomName:          resp.RoomName,
		TeacherID:         resp.TeacherID,
		ActivityType:      resp.ActivityType,
		ActivityName:      resp.ActivityName,
		RequiredCapacity:  resp.RequiredCapacity,
		RequiresEquipment: resp.RequiresEquipment,
		Date:              resp.StartTime.Format(domain.DateFormat),
		StartTime:         resp.StartTime.Format(domain.TimeFormat),
		EndTime:           resp.EndTime.Format(domain.TimeFormat),
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
