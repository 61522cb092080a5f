package models

import (
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                int64  `json:"id"`
	RoomID            int64  `json:"roomId"`
	TeacherID         *int64 `json:"teacherId,omitempty"`
	ActivityType      string `json:"activityType"`
	ActivityName      string `json:"activityName"`
	RequiredCapacity  int    `json:"requiredCapacity"`
	RequiresEquipment bool   `json:"requiresEquipment"`
	Date              string `json:"date"`      // "2025-10-15"
	StartTime         string `json:"startTime"` // "10:00"
	EndTime           string `json:"endTime"`   // "12:00"

	// Заполняются только для перемещенных броней
	IsRelocated       bool    `json:"isRelocated"`
	OriginalStartTime *string `json:"originalStartTime,omitempty"` // ISO 8601 format
	OriginalEndTime   *string `json:"originalEndTime,omitempty"`   // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// RoomScheduleResponse расписание комнаты на день
type RoomScheduleResponse struct {
	RoomID   int64             `json:"roomId"`
	RoomName string            `json:"roomName"`
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                b.ID,
		RoomID:            b.RoomID,
		TeacherID:         b.TeacherID,
		ActivityType:      string(b.ActivityType),
		ActivityName:      b.ActivityName,
		RequiredCapacity:  b.RequiredCapacity,
		RequiresEquipment: b.RequiresEquipment,
		Date:              b.StartTime.Format(domain.DateFormat),
		StartTime:         b.StartTime.Format(domain.TimeFormat),
		EndTime:           b.EndTime.Format(domain.TimeFormat),
		IsRelocated:       b.IsRelocated,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	if b.OriginalStartTime != nil {
		s := b.OriginalStartTime.Format(time.RFC3339)
		resp.OriginalStartTime = &s
	}
	if b.OriginalEndTime != nil {
		s := b.OriginalEndTime.Format(time.RFC3339)
		resp.OriginalEndTime = &s
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
