package schedule_maintenance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	roomRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/room"
)

// UseCase use case согласования окон технического обслуживания.
// Обслуживание, в отличие от занятий, может занимать обеденный час:
// час без занятий - лучшее время для ремонта.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	randProvider RandProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		randProvider: NewRealRandProvider(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// OfferSlots подбирает варианты окон обслуживания комнаты.
// Перебираются свободные часовые окна рабочих дней от завтрашнего дня
// до горизонта поиска, из них выбирается случайный поднабор предложений.
func (uc *UseCase) OfferSlots(ctx context.Context, req *OfferSlotsRequest) (*OfferSlotsResponse, error) {
	uc.logger.Info("ScheduleMaintenance: offer slots for room=%d, horizon=%d days", req.RoomID, req.HorizonDays)

	// 1. Валидация входных данных
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	horizon := req.HorizonDays
	if horizon == 0 {
		horizon = domain.DefaultMaintenanceHorizonDays
	}
	if horizon < 0 || horizon > domain.MaxMaintenanceHorizonDays {
		return nil, fmt.Errorf("%w: horizonDays must be between 1 and %d",
			ErrInvalidInput, domain.MaxMaintenanceHorizonDays)
	}

	// 2. Проверка существования комнаты
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("ScheduleMaintenance: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("ScheduleMaintenance: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Сбор свободных часовых окон: рабочие дни, часы работы, включая обед
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var lunch, other []domain.Slot
	for d := 1; d <= horizon; d++ {
		day := today.AddDate(0, 0, d)
		if domain.IsWeekend(day) {
			continue
		}

		bookings, err := uc.bookingRepo.GetByRoomAndDate(ctx, room.ID, day)
		if err != nil {
			uc.logger.Error("ScheduleMaintenance: failed to get bookings for room id=%d on %s: %v",
				room.ID, day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for hour := domain.OpeningHour; hour < domain.ClosingHour; hour++ {
			start := day.Add(time.Duration(hour) * time.Hour)
			end := start.Add(time.Hour)
			if !domain.IsAvailable(bookings, start, end) {
				continue
			}

			slot := domain.Slot{
				Date:         day,
				StartTime:    start,
				EndTime:      end,
				RoomID:       room.ID,
				RoomName:     room.Name,
				RoomCapacity: room.Capacity,
			}
			if isLunchSlot(slot) {
				lunch = append(lunch, slot)
			} else {
				other = append(other, slot)
			}
		}
	}

	// 4. Случайный выбор предложений с приоритетом обеденных окон
	offers := pickOffers(lunch, other, uc.randProvider)

	uc.logger.Info("ScheduleMaintenance: offering %d slots for room=%s (%d lunch, %d other available)",
		len(offers), room.Name, len(lunch), len(other))

	return &OfferSlotsResponse{
		RoomID:   room.ID,
		RoomName: room.Name,
		Slots:    offers,
	}, nil
}

// Book создает бронь технического обслуживания на часовое окно.
// Правило обеденного блока не применяется: обслуживание в обед разрешено.
func (uc *UseCase) Book(ctx context.Context, req *BookRequest) (*BookResponse, error) {
	uc.logger.Info("ScheduleMaintenance: book room=%d, date=%s, hour=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), req.StartHour)

	// 1. Валидация входных данных
	if err := validateBookRequest(req); err != nil {
		uc.logger.Warn("ScheduleMaintenance: validation failed: %v", err)
		return nil, err
	}

	// 2. Обслуживание планируется минимум за день
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	if !day.After(today) {
		uc.logger.Warn("ScheduleMaintenance: date %s is not in advance", day.Format(domain.DateFormat))
		return nil, ErrDateNotInAdvance
	}

	// 3. Рабочий день и рабочие часы (обеденный час разрешен)
	if domain.IsWeekend(day) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, domain.ReasonWeekend)
	}

	start := day.Add(time.Duration(req.StartHour) * time.Hour)
	end := start.Add(time.Hour)

	var result *domain.Booking
	var roomName string

	// 4. Проверка и запись атомарно, под сериализуемой транзакцией
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("ScheduleMaintenance: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("ScheduleMaintenance: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
		roomName = room.Name

		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, room.ID, start, end)
		if err != nil {
			uc.logger.Error("ScheduleMaintenance: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("ScheduleMaintenance: room id=%d busy in [%s, %s)",
				room.ID, start.Format(time.RFC3339), end.Format(time.RFC3339))
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			RoomID:       room.ID,
			ActivityType: domain.ActivityMaintenance,
			ActivityName: "Maintenance",
			StartTime:    start,
			EndTime:      end,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("ScheduleMaintenance: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ScheduleMaintenance: booked maintenance id=%d in room=%s at %s",
		result.ID, roomName, start.Format(time.RFC3339))

	return &BookResponse{
		ID:        result.ID,
		RoomID:    result.RoomID,
		RoomName:  roomName,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
	}, nil
}

// validateBookRequest валидирует структурные требования запроса на бронь
func validateBookRequest(req *BookRequest) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartHour < domain.OpeningHour || req.StartHour >= domain.ClosingHour {
		return fmt.Errorf("%w: startHour must be between %d and %d",
			ErrInvalidInput, domain.OpeningHour, domain.ClosingHour-1)
	}
	return nil
}
