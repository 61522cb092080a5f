package get_teacher_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmfaustino/DEI-RoomService/internal/api/handlers"
	"github.com/dmfaustino/DEI-RoomService/internal/service/bookings"
)

const (
	msgInvalidTeacherID = "некорректный идентификатор преподавателя"
	msgTeacherNotFound  = "преподаватель не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/teachers/{teacherId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := strconv.ParseInt(mux.Vars(r)["teacherId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /teachers/{id}/bookings - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	result, err := h.service.GetTeacherBookings(r.Context(), teacherID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrTeacherNotFound):
			h.logger.Warn("GET /teachers/{id}/bookings - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("GET /teachers/{id}/bookings - Failed to get bookings: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
