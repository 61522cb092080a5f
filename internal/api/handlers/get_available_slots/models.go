package get_available_slots

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	getAvailableSlots "github.com/dmfaustino/DEI-RoomService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Date         string `json:"date"`      // "2025-10-15"
	StartTime    string `json:"startTime"` // "10:00"
	EndTime      string `json:"endTime"`   // "12:00"
	RoomID       int64  `json:"roomId"`
	RoomName     string `json:"roomName"`
	RoomCapacity int    `json:"roomCapacity"`
	IsSuggestion bool   `json:"isSuggestion"`
}

// SlotsResponse HTTP модель ответа со списком слотов
type SlotsResponse struct {
	Slots        []SlotResponse `json:"slots"`
	UsedFallback bool           `json:"usedFallback"`
}

// parseQuery конвертирует query-параметры в модель use case
func parseQuery(values url.Values) (*getAvailableSlots.Request, error) {
	capacity, err := strconv.Atoi(values.Get("capacity"))
	if err != nil {
		return nil, fmt.Errorf("invalid capacity: %v", err)
	}

	startDate, err := time.Parse(domain.DateFormat, values.Get("startDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %v", err)
	}

	endDate, err := time.Parse(domain.DateFormat, values.Get("endDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %v", err)
	}

	startHour, err := strconv.Atoi(values.Get("startHour"))
	if err != nil {
		return nil, fmt.Errorf("invalid startHour: %v", err)
	}

	durationHours, err := strconv.Atoi(values.Get("durationHours"))
	if err != nil {
		return nil, fmt.Errorf("invalid durationHours: %v", err)
	}

	req := &getAvailableSlots.Request{
		RequiredCapacity: capacity,
		StartDate:        startDate,
		EndDate:          endDate,
		StartHour:        startHour,
		DurationHours:    durationHours,
		MaxSuggestions:   domain.DefaultMaxSuggestions,
	}

	if raw := values.Get("needsEquipment"); raw != "" {
		needsEquipment, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid needsEquipment: %v", err)
		}
		req.NeedsEquipment = needsEquipment
	}

	if raw := values.Get("maxSuggestions"); raw != "" {
		maxSuggestions, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid maxSuggestions: %v", err)
		}
		req.MaxSuggestions = maxSuggestions
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		Slots:        make([]SlotResponse, 0, len(resp.Slots)),
		UsedFallback: resp.UsedFallback,
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Date:         s.Date.Format(domain.DateFormat),
			StartTime:    s.StartTime.Format(domain.TimeFormat),
			EndTime:      s.EndTime.Format(domain.TimeFormat),
			RoomID:       s.RoomID,
			RoomName:     s.RoomName,
			RoomCapacity: s.RoomCapacity,
			IsSuggestion: s.IsSuggestion,
		})
	}
	return out
}
