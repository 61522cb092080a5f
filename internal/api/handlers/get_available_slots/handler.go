package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/dmfaustino/DEI-RoomService/internal/api/handlers"
	"github.com/dmfaustino/DEI-RoomService/pkg/metrics"

	getAvailableSlots "github.com/dmfaustino/DEI-RoomService/internal/usecase/get_available_slots"
)

const (
	msgInvalidQuery    = "некорректные параметры запроса"
	msgInvalidInput    = "некорректные входные данные"
	msgInvalidTimeSlot = "некорректное временное окно"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidTimeSlot):
			h.logger.Warn("GET /slots - Invalid time slot: startHour=%d, duration=%d", req.StartHour, req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /slots - Failed to search slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil && result.UsedFallback {
		h.metrics.SearchFallbackTotal.Inc()
	}

	h.logger.Info("GET /slots - Found %d slots (fallback=%v)", len(result.Slots), result.UsedFallback)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
