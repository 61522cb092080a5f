package get_maintenance_slots

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
	msgInvalidRoomID = "некорректный идентификатор комнаты"
	msgInvalidDays   = "некорректный параметр days"
	msgRoomNotFound  = "комната не найдена"
	msgInvalidInput  = "некорректные входные данные"
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

// Handle GET /api/v1/rooms/{roomId}/maintenance-slots?days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/maintenance-slots - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/maintenance-slots - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	result, err := h.useCase.OfferSlots(r.Context(), &scheduleMaintenance.OfferSlotsRequest{
		RoomID:      roomID,
		HorizonDays: days,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleMaintenance.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/maintenance-slots - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, scheduleMaintenance.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/maintenance-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{id}/maintenance-slots - Failed to offer slots: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.MaintenanceOffersTotal.Inc()
	}

	h.logger.Info("GET /rooms/{id}/maintenance-slots - Offered %d slots: room_id=%d", len(result.Slots), roomID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
