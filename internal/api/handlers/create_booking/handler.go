package create_booking

import (
	"errors"
	"net/http"

	"github.com/dmfaustino/DEI-RoomService/internal/api/handlers"
	"github.com/dmfaustino/DEI-RoomService/internal/api/middleware"
	"github.com/dmfaustino/DEI-RoomService/pkg/metrics"

	createBooking "github.com/dmfaustino/DEI-RoomService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotNotAvailable   = "выбранное временное окно занято"
	msgTeacherNotFound    = "преподаватель не найден"
	msgCourseNotFound     = "курс не найден"
	msgRoomNotFound       = "комната не найдена"
	msgInvalidTimeSlot    = "некорректное временное окно"
	msgDateNotInAdvance   = "бронировать можно минимум за день"
	msgRoomTooSmall       = "вместимости комнаты недостаточно"
	msgNoWorkingEquipment = "в комнате нет исправного оборудования"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := middleware.TeacherIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "отсутствует идентификатор преподавателя")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(teacherID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: teacher_id=%d, room_id=%d", teacherID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTeacherNotFound):
			h.logger.Warn("POST /bookings - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondNotFound(w, msgTeacherNotFound)

		case errors.Is(err, createBooking.ErrCourseNotFound):
			h.logger.Warn("POST /bookings - Course not found: teacher_id=%d", teacherID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: teacher_id=%d, room_id=%d", teacherID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrDateNotInAdvance):
			h.logger.Warn("POST /bookings - Date not in advance: teacher_id=%d, date=%s", teacherID, req.Date)
			handlers.RespondBadRequest(w, msgDateNotInAdvance)

		case errors.Is(err, createBooking.ErrRoomTooSmall):
			h.logger.Warn("POST /bookings - Room too small: teacher_id=%d, room_id=%d", teacherID, req.RoomID)
			handlers.RespondBadRequest(w, msgRoomTooSmall)

		case errors.Is(err, createBooking.ErrNoWorkingEquipment):
			h.logger.Warn("POST /bookings - No working equipment: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgNoWorkingEquipment)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: teacher_id=%d, room_id=%d, error=%v",
				teacherID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.BookingsCreatedTotal.WithLabelValues(result.ActivityType).Inc()
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, teacher_id=%d, room=%s",
		result.ID, teacherID, result.RoomName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
