package relocate_booking

import (
	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	relocateBooking "github.com/dmfaustino/DEI-RoomService/internal/usecase/relocate_booking"
)

// RelocationResponse HTTP response model
type RelocationResponse struct {
	BookingID int64  `json:"bookingId"`
	FromRoom  string `json:"fromRoom"`
	ToRoom    string `json:"toRoom"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Message   string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *relocateBooking.Response) *RelocationResponse {
	return &RelocationResponse{
		BookingID: resp.BookingID,
		FromRoom:  resp.FromRoom,
		ToRoom:    resp.ToRoom,
		Date:      resp.StartTime.Format(domain.DateFormat),
		StartTime: resp.StartTime.Format(domain.TimeFormat),
		EndTime:   resp.EndTime.Format(domain.TimeFormat),
		Message:   resp.Message,
	}
}
