package relocate_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmfaustino/DEI-RoomService/internal/api/handlers"
	"github.com/dmfaustino/DEI-RoomService/internal/api/middleware"
	"github.com/dmfaustino/DEI-RoomService/pkg/metrics"

	relocateBooking "github.com/dmfaustino/DEI-RoomService/internal/usecase/relocate_booking"
)

const (
	msgInvalidBookingID  = "некорректный идентификатор бронирования"
	msgBookingNotFound   = "бронирование не найдено"
	msgAccessDenied      = "можно переместить только свое бронирование"
	msgMaintenanceMove   = "бронь обслуживания нельзя переместить"
	msgNoAlternativeRoom = "нет подходящей свободной комнаты"
)

type Handler struct {
	useCase RelocateBookingUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase RelocateBookingUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/relocate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := middleware.TeacherIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "отсутствует идентификатор преподавателя")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/relocate - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &relocateBooking.Request{
		BookingID: bookingID,
		TeacherID: &teacherID,
	})
	if err != nil {
		if h.metrics != nil && errors.Is(err, relocateBooking.ErrNoAlternativeRoom) {
			h.metrics.RelocationsTotal.WithLabelValues("failed").Inc()
		}

		switch {
		case errors.Is(err, relocateBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/relocate - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, relocateBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/relocate - Access denied: booking_id=%d, teacher_id=%d",
				bookingID, teacherID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, relocateBooking.ErrMaintenanceNotRelocatable):
			h.logger.Warn("POST /bookings/{id}/relocate - Maintenance booking: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgMaintenanceMove)

		case errors.Is(err, relocateBooking.ErrNoAlternativeRoom):
			h.logger.Warn("POST /bookings/{id}/relocate - No alternative room: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNoAlternativeRoom)

		case errors.Is(err, relocateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/relocate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /bookings/{id}/relocate - Failed to relocate: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.RelocationsTotal.WithLabelValues("moved").Inc()
	}

	h.logger.Info("POST /bookings/{id}/relocate - Booking relocated: booking_id=%d, %s -> %s",
		bookingID, result.FromRoom, result.ToRoom)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
