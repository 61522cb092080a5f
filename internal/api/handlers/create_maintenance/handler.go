package create_maintenance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmfaustino/DEI-RoomService/internal/api/handlers"
	"github.com/dmfaustino/DEI-RoomService/pkg/metrics"

	scheduleMaintenance "github.com/dmfaustino/DEI-RoomService/internal/usecase/schedule_maintenance"
)

const (
	msgInvalidRoomID      = "некорректный идентификатор комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "комната не найдена"
	msgSlotNotAvailable   = "выбранное временное окно занято"
	msgInvalidTimeSlot    = "некорректное временное окно"
	msgDateNotInAdvance   = "планировать обслуживание можно минимум за день"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase ScheduleMaintenanceUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase ScheduleMaintenanceUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/maintenance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/maintenance - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req CreateMaintenanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/maintenance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(roomID)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/maintenance - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Book(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleMaintenance.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/maintenance - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, scheduleMaintenance.ErrSlotNotAvailable):
			h.logger.Warn("POST /rooms/{id}/maintenance - Slot not available: room_id=%d", roomID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, scheduleMaintenance.ErrInvalidTimeSlot):
			h.logger.Warn("POST /rooms/{id}/maintenance - Invalid time slot: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, scheduleMaintenance.ErrDateNotInAdvance):
			h.logger.Warn("POST /rooms/{id}/maintenance - Date not in advance: room_id=%d, date=%s", roomID, req.Date)
			handlers.RespondBadRequest(w, msgDateNotInAdvance)

		case errors.Is(err, scheduleMaintenance.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/maintenance - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms/{id}/maintenance - Failed to book maintenance: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.BookingsCreatedTotal.WithLabelValues("maintenance").Inc()
	}

	h.logger.Info("POST /rooms/{id}/maintenance - Maintenance booked: booking_id=%d, room=%s",
		result.ID, result.RoomName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
