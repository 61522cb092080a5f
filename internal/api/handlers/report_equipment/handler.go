package report_equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmfaustino/DEI-RoomService/internal/api/handlers"
	"github.com/dmfaustino/DEI-RoomService/pkg/metrics"

	reportEquipment "github.com/dmfaustino/DEI-RoomService/internal/usecase/report_equipment"
)

const (
	msgInvalidEquipmentID = "некорректный идентификатор оборудования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEquipmentNotFound  = "оборудование не найдено"
)

type Handler struct {
	useCase ReportEquipmentUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase ReportEquipmentUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/equipment/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := strconv.ParseInt(mux.Vars(r)["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /equipment/{id} - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	var req ReportEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /equipment/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reportEquipment.Request{
		EquipmentID: equipmentID,
		Broken:      req.Broken,
	})
	if err != nil {
		switch {
		case errors.Is(err, reportEquipment.ErrEquipmentNotFound):
			h.logger.Warn("PATCH /equipment/{id} - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, reportEquipment.ErrInvalidInput):
			h.logger.Warn("PATCH /equipment/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEquipmentID)

		default:
			h.logger.Error("PATCH /equipment/{id} - Failed to report equipment: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		for _, outcome := range result.Relocations {
			if outcome.Relocated {
				h.metrics.RelocationsTotal.WithLabelValues("moved").Inc()
			} else {
				h.metrics.RelocationsTotal.WithLabelValues("failed").Inc()
			}
		}
	}

	h.logger.Info("PATCH /equipment/{id} - Equipment updated: equipment_id=%d, broken=%v, relocations=%d",
		equipmentID, req.Broken, len(result.Relocations))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
