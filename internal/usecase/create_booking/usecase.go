package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	roomRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/room"
	staffClient "github.com/dmfaustino/DEI-RoomService/internal/integrations/staffservice"
)

// UseCase use case создания бронирования.
// Последовательность "проверка занятости - создание" выполняется в
// сериализуемой транзакции с блокировкой броней комнаты (FOR UPDATE),
// чтобы два конкурентных запроса не забронировали одно окно.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	staffClient  StaffServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		staffClient:  staffClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: teacher=%d, room=%d, date=%s, hour=%d, duration=%dh, activity=%s",
		req.TeacherID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartHour, req.DurationHours, req.ActivityType)

	// 1. Структурная валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Бронь минимум за день
	if err := validateAdvance(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is not in advance", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Проверка преподавателя в StaffService
	teacher, err := uc.staffClient.GetTeacher(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, staffClient.ErrTeacherNotFound) {
			uc.logger.Warn("CreateBooking: teacher id=%d not found", req.TeacherID)
			return nil, ErrTeacherNotFound
		}
		uc.logger.Error("CreateBooking: failed to get teacher id=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get teacher: %v", ErrInternal, err)
	}

	// 4. Требуемая вместимость и название активности
	requiredCapacity, activityName, err := uc.resolveActivity(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Правила работы департамента
	start := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), req.StartHour, 0, 0, 0, req.Date.Location())
	end := start.Add(time.Duration(req.DurationHours) * time.Hour)

	if ok, reason := domain.ValidateTimeSlot(start, end); !ok {
		uc.logger.Warn("CreateBooking: time slot rejected: %s", reason)
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, reason)
	}

	var result *domain.Booking
	var roomName string

	// 6. Проверка и запись атомарно, под сериализуемой транзакцией
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
		roomName = room.Name

		if room.Capacity < requiredCapacity {
			uc.logger.Warn("CreateBooking: room id=%d capacity %d < required %d",
				room.ID, room.Capacity, requiredCapacity)
			return ErrRoomTooSmall
		}

		if req.NeedsEquipment && !room.HasWorkingEquipment() {
			uc.logger.Warn("CreateBooking: room id=%d has no working equipment", room.ID)
			return ErrNoWorkingEquipment
		}

		// Проверка занятости с блокировкой броней комнаты
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, room.ID, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: room id=%d busy in [%s, %s)",
				room.ID, start.Format(time.RFC3339), end.Format(time.RFC3339))
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			RoomID:            room.ID,
			TeacherID:         &teacher.ID,
			ActivityType:      req.ActivityType,
			ActivityName:      activityName,
			RequiredCapacity:  requiredCapacity,
			RequiresEquipment: req.NeedsEquipment,
			StartTime:         start,
			EndTime:           end,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d in room=%s", result.ID, roomName)

	return &Response{
		ID:                result.ID,
		RoomID:            result.RoomID,
		RoomName:          roomName,
		TeacherID:         teacher.ID,
		ActivityType:      string(result.ActivityType),
		ActivityName:      result.ActivityName,
		RequiredCapacity:  result.RequiredCapacity,
		RequiresEquipment: result.RequiresEquipment,
		StartTime:         result.StartTime,
		EndTime:           result.EndTime,
		CreatedAt:         result.CreatedAt,
	}, nil
}

// resolveActivity определяет требуемую вместимость и название активности.
// Для лекций по курсу вместимость берется из курса, название - из его кода.
func (uc *UseCase) resolveActivity(ctx context.Context, req *Request) (int, string, error) {
	if req.CourseCode != nil {
		course, err := uc.staffClient.GetCourse(ctx, *req.CourseCode)
		if err != nil {
			if errors.Is(err, staffClient.ErrCourseNotFound) {
				uc.logger.Warn("CreateBooking: course %s not found", *req.CourseCode)
				return 0, "", ErrCourseNotFound
			}
			uc.logger.Error("CreateBooking: failed to get course %s: %v", *req.CourseCode, err)
			return 0, "", fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
		}
		return course.RequiredCapacity, fmt.Sprintf("Lecture: %s", course.Name), nil
	}

	return *req.RequiredCapacity, "Meeting", nil
}
