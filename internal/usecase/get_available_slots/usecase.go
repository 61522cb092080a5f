package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// UseCase use case поиска доступных слотов в интервале дат.
// Фаза 1: поиск на запрошенный час по каждому дню интервала.
// Фаза 2 (поиск-гипотеза): запускается только если фаза 1 не дала ни одного
// слота; перебирает альтернативные часы и помечает результаты как предложения.
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	rand        RandProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		rand:        NewRealRandProvider(),
		logger:      logger,
	}
}

// Execute выполняет use case поиска слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: capacity=%d, interval=%s..%s, startHour=%d, duration=%dh, equipment=%t",
		req.RequiredCapacity, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.StartHour, req.DurationHours, req.NeedsEquipment)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем индекс комнат один раз на весь поиск
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Фаза 1: запрошенный час по каждому дню интервала
	slots, err := uc.searchPhase(ctx, rooms, req, []int{req.StartHour}, false)
	if err != nil {
		return nil, err
	}

	usedFallback := false

	// 4. Фаза 2: только при полностью пустой фазе 1
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: primary search empty, running hypothesis search")
		usedFallback = true

		slots, err = uc.searchPhase(ctx, rooms, req, candidateHours(req.StartHour), true)
		if err != nil {
			return nil, err
		}
	}

	// 5. Итоговая сортировка по (дата, время начала, вместимость)
	sortSlots(slots)

	// 6. Презентационное ограничение списка предложений
	if usedFallback && req.MaxSuggestions > 0 {
		slots = sampleSlots(slots, req.MaxSuggestions, uc.rand)
	}

	uc.logger.Info("GetAvailableSlots: found %d slots (fallback=%t)", len(slots), usedFallback)

	return &Response{
		Slots:        slots,
		UsedFallback: usedFallback,
	}, nil
}

// searchPhase перебирает дни интервала (без выходных) и кандидатные часы,
// выполняя для каждой комбинации шаг "валидация - поиск комнат"
func (uc *UseCase) searchPhase(ctx context.Context, rooms []domain.Room, req *Request, hours []int, suggestion bool) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	for day := req.StartDate; !day.After(req.EndDate); day = day.AddDate(0, 0, 1) {
		if domain.IsWeekend(day) {
			continue
		}

		for _, hour := range hours {
			daySlots, err := uc.collectDaySlots(ctx, rooms, req, day, hour, suggestion)
			if err != nil {
				return nil, err
			}
			slots = append(slots, daySlots...)
		}
	}

	return slots, nil
}

// collectDaySlots ищет свободные комнаты на конкретный день и час.
// Окна, нарушающие правила работы, молча пропускаются: это штатный
// исход перебора, а не ошибка запроса.
func (uc *UseCase) collectDaySlots(ctx context.Context, rooms []domain.Room, req *Request, day time.Time, hour int, suggestion bool) ([]domain.Slot, error) {
	start := dateAtHour(day, hour)
	end := start.Add(time.Duration(req.DurationHours) * time.Hour)

	if ok, _ := domain.ValidateTimeSlot(start, end); !ok {
		return nil, nil
	}

	suitable := domain.FilterSuitableRooms(rooms, req.RequiredCapacity, req.NeedsEquipment)

	slots := make([]domain.Slot, 0, len(suitable))
	for _, room := range suitable {
		overlapping, err := uc.bookingRepo.FindOverlapping(ctx, room.ID, start, end)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to find overlapping bookings for room=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			continue
		}

		slots = append(slots, domain.Slot{
			Date:         day,
			StartTime:    start,
			EndTime:      end,
			RoomID:       room.ID,
			RoomName:     room.Name,
			RoomCapacity: room.Capacity,
			IsSuggestion: suggestion,
		})
	}

	return slots, nil
}
