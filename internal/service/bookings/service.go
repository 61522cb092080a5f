package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	bookingRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/booking"
	roomRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/room"
	"github.com/dmfaustino/DEI-RoomService/internal/integrations/staffservice"
	"github.com/dmfaustino/DEI-RoomService/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	staffClient StaffServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		staffClient: staffClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование.
// Преподаватель может отменить только свою бронь; брони обслуживания
// не имеют владельца и через этот метод не отменяются.
func (s *Service) Cancel(ctx context.Context, bookingID int64, teacherID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by teacher=%d", bookingID, teacherID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(teacherID) {
		s.logger.Warn("Cancel: access denied for teacher=%d to booking id=%d", teacherID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// GetRoomSchedule получает расписание комнаты на день, отсортированное
// по времени начала
func (s *Service) GetRoomSchedule(ctx context.Context, roomID int64, date time.Time) (*models.RoomScheduleResponse, error) {
	s.logger.Info("GetRoomSchedule: fetching schedule for room=%d on %s", roomID, date.Format("2006-01-02"))

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoomSchedule: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomSchedule: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetRoomSchedule - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByRoomAndDate(ctx, roomID, date)
	if err != nil {
		s.logger.Error("GetRoomSchedule: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetRoomSchedule - repository error: %v", ErrInternal, err)
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].StartTime.Before(bookings[j].StartTime)
	})

	list := models.FromDomainBookingList(bookings)

	s.logger.Info("GetRoomSchedule: %d bookings for room=%s on %s",
		len(list.Bookings), room.Name, date.Format("2006-01-02"))

	return &models.RoomScheduleResponse{
		RoomID:   room.ID,
		RoomName: room.Name,
		Date:     date.Format("2006-01-02"),
		Bookings: list.Bookings,
	}, nil
}

// GetTeacherBookings получает бронирования преподавателя.
// Преподаватель проверяется в StaffService.
func (s *Service) GetTeacherBookings(ctx context.Context, teacherID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetTeacherBookings: fetching bookings for teacher=%d", teacherID)

	if _, err := s.staffClient.GetTeacher(ctx, teacherID); err != nil {
		if errors.Is(err, staffservice.ErrTeacherNotFound) {
			s.logger.Warn("GetTeacherBookings: teacher id=%d not found", teacherID)
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("GetTeacherBookings: staff service error for teacher id=%d: %v", teacherID, err)
		return nil, fmt.Errorf("%w: GetTeacherBookings - staff service error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("GetTeacherBookings: repository error for teacher id=%d: %v", teacherID, err)
		return nil, fmt.Errorf("%w: GetTeacherBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTeacherBookings: successfully fetched %d bookings for teacher=%d", len(bookings), teacherID)
	return models.FromDomainBookingList(bookings), nil
}
