package report_equipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	roomRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/room"
	"github.com/dmfaustino/DEI-RoomService/internal/usecase/relocate_booking"
)

// UseCase use case смены состояния оборудования.
// Поломка запускает каскад: все будущие брони комнаты, которым нужно
// оборудование, по возможности перемещаются в другие комнаты. Ремонт
// снимает запланированное обслуживание комнаты.
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	relocator    Relocator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	relocator Relocator,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		relocator:    relocator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case смены состояния оборудования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReportEquipment: equipment=%d, broken=%v", req.EquipmentID, req.Broken)

	// 1. Валидация входных данных
	if req.EquipmentID <= 0 {
		return nil, fmt.Errorf("%w: equipmentID must be positive", ErrInvalidInput)
	}

	// 2. Поиск комнаты по оборудованию
	room, err := uc.roomRepo.GetByEquipmentID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrEquipmentNotFound) {
			uc.logger.Warn("ReportEquipment: equipment id=%d not found", req.EquipmentID)
			return nil, ErrEquipmentNotFound
		}
		uc.logger.Error("ReportEquipment: failed to get room by equipment id=%d: %v", req.EquipmentID, err)
		return nil, fmt.Errorf("%w: failed to get room by equipment: %v", ErrInternal, err)
	}

	// 3. Смена состояния оборудования
	if err := uc.roomRepo.SetEquipmentBroken(ctx, req.EquipmentID, req.Broken); err != nil {
		uc.logger.Error("ReportEquipment: failed to set equipment id=%d broken=%v: %v",
			req.EquipmentID, req.Broken, err)
		return nil, fmt.Errorf("%w: failed to update equipment: %v", ErrInternal, err)
	}

	resp := &Response{
		EquipmentID:   req.EquipmentID,
		EquipmentName: equipmentName(room, req.EquipmentID),
		RoomID:        room.ID,
		RoomName:      room.Name,
		Broken:        req.Broken,
	}

	// 4. Каскад: перемещение при поломке, снятие обслуживания при ремонте
	if req.Broken {
		resp.Relocations, err = uc.relocateAffected(ctx, room)
	} else {
		resp.CancelledMaintenance, err = uc.cancelMaintenance(ctx, room)
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// relocateAffected перемещает будущие брони комнаты, которым требуется
// оборудование. Неудача перемещения отдельной брони не прерывает каскад:
// такая бронь остается на месте с пометкой в результате.
func (uc *UseCase) relocateAffected(ctx context.Context, room *domain.Room) ([]RelocationOutcome, error) {
	now := uc.timeProvider.Now()

	affected, err := uc.bookingRepo.FindEquipmentDependentByRoom(ctx, room.ID, now)
	if err != nil {
		uc.logger.Error("ReportEquipment: failed to find affected bookings in room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to find affected bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("ReportEquipment: %d bookings affected in room=%s", len(affected), room.Name)

	outcomes := make([]RelocationOutcome, 0, len(affected))
	for _, booking := range affected {
		result, err := uc.relocator.Execute(ctx, &relocate_booking.Request{BookingID: booking.ID})
		if err != nil {
			if errors.Is(err, relocate_booking.ErrNoAlternativeRoom) {
				uc.logger.Warn("ReportEquipment: no alternative room for booking id=%d", booking.ID)
				outcomes = append(outcomes, RelocationOutcome{
					BookingID: booking.ID,
					Message:   "No suitable alternative room available",
				})
				continue
			}
			uc.logger.Error("ReportEquipment: failed to relocate booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: failed to relocate booking: %v", ErrInternal, err)
		}

		outcomes = append(outcomes, RelocationOutcome{
			BookingID: booking.ID,
			Relocated: true,
			ToRoom:    result.ToRoom,
			Message:   result.Message,
		})
	}

	return outcomes, nil
}

// cancelMaintenance снимает будущие брони обслуживания комнаты
func (uc *UseCase) cancelMaintenance(ctx context.Context, room *domain.Room) (int64, error) {
	now := uc.timeProvider.Now()

	deleted, err := uc.bookingRepo.DeleteMaintenanceByRoom(ctx, room.ID, now)
	if err != nil {
		uc.logger.Error("ReportEquipment: failed to cancel maintenance in room id=%d: %v", room.ID, err)
		return 0, fmt.Errorf("%w: failed to cancel maintenance: %v", ErrInternal, err)
	}

	uc.logger.Info("ReportEquipment: cancelled %d maintenance bookings in room=%s", deleted, room.Name)
	return deleted, nil
}

// equipmentName возвращает название оборудования по его ID
func equipmentName(room *domain.Room, equipmentID int64) string {
	for _, eq := range room.Equipment {
		if eq.ID == equipmentID {
			return eq.Name
		}
	}
	return ""
}
