package relocate_booking

import (
	"context"

	relocateBooking "github.com/dmfaustino/DEI-RoomService/internal/usecase/relocate_booking"
)

type RelocateBookingUseCase interface {
	Execute(ctx context.Context, req *relocateBooking.Request) (*relocateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
