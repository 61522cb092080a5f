package relocate_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	bookingRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/booking"
)

// UseCase use case перемещения бронирования в другую комнату.
// Подбор комнаты и обновление брони выполняются в сериализуемой транзакции,
// чтобы конкурентное бронирование не заняло выбранную комнату между
// проверкой и записью.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case перемещения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RelocateBooking: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Загрузка бронирования
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RelocateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RelocateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if req.TeacherID != nil && !booking.IsOwnedBy(*req.TeacherID) {
			uc.logger.Warn("RelocateBooking: booking id=%d does not belong to teacher id=%d",
				booking.ID, *req.TeacherID)
			return ErrAccessDenied
		}

		if booking.IsMaintenance() {
			uc.logger.Warn("RelocateBooking: booking id=%d is maintenance", booking.ID)
			return ErrMaintenanceNotRelocatable
		}

		currentRoom, err := uc.roomRepo.GetByID(txCtx, booking.RoomID)
		if err != nil {
			uc.logger.Error("RelocateBooking: failed to get room id=%d: %v", booking.RoomID, err)
			return fmt.Errorf("%w: failed to get current room: %v", ErrInternal, err)
		}

		// 3. Подбор кандидатов: по вместимости (меньшая достаточная первой)
		// и обязательно с исправным оборудованием
		rooms, err := uc.roomRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("RelocateBooking: failed to list rooms: %v", err)
			return fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
		}

		candidates := domain.FilterSuitableRooms(rooms, booking.RequiredCapacity, true)

		// 4. Первая свободная комната в окне бронирования
		target, err := uc.findFreeRoom(txCtx, candidates, booking)
		if err != nil {
			return err
		}
		if target == nil {
			uc.logger.Warn("RelocateBooking: no alternative room for booking id=%d (capacity=%d)",
				booking.ID, booking.RequiredCapacity)
			return ErrNoAlternativeRoom
		}

		// 5. Перенос брони с фиксацией исходного окна
		if err := uc.bookingRepo.UpdateRoom(txCtx, booking.ID, target.ID); err != nil {
			uc.logger.Error("RelocateBooking: failed to move booking id=%d to room id=%d: %v",
				booking.ID, target.ID, err)
			return fmt.Errorf("%w: failed to move booking: %v", ErrInternal, err)
		}

		resp = &Response{
			BookingID: booking.ID,
			FromRoom:  currentRoom.Name,
			ToRoom:    target.Name,
			StartTime: booking.StartTime,
			EndTime:   booking.EndTime,
			Message:   fmt.Sprintf("Booking moved from %s to %s", currentRoom.Name, target.Name),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RelocateBooking: booking id=%d moved from %s to %s",
		resp.BookingID, resp.FromRoom, resp.ToRoom)
	return resp, nil
}

// findFreeRoom возвращает первую из комнат-кандидатов, свободную в окне
// бронирования. Текущая комната исключается.
func (uc *UseCase) findFreeRoom(ctx context.Context, candidates []domain.Room, booking *domain.Booking) (*domain.Room, error) {
	for _, room := range candidates {
		if room.ID == booking.RoomID {
			continue
		}

		overlapping, err := uc.bookingRepo.FindOverlapping(ctx, room.ID, booking.StartTime, booking.EndTime)
		if err != nil {
			uc.logger.Error("RelocateBooking: failed to check room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: failed to check room availability: %v", ErrInternal, err)
		}

		if len(overlapping) == 0 {
			return &room, nil
		}
	}
	return nil, nil
}
