package relocate_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	bookingRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/booking"
	roomRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/room"
	"github.com/dmfaustino/DEI-RoomService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, roomID int64, start, end time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Overlaps(start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateRoom(_ context.Context, bookingID, newRoomID int64) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.OriginalStartTime == nil {
		b.OriginalStartTime = ptr.Ptr(b.StartTime)
		b.OriginalEndTime = ptr.Ptr(b.EndTime)
	}
	b.RoomID = newRoomID
	b.IsRelocated = true
	return nil
}

type fakeRoomRepo struct {
	rooms []domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context) ([]domain.Room, error) {
	return f.rooms, nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	for i := range f.rooms {
		if f.rooms[i].ID == id {
			return &f.rooms[i], nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
}

func slot(day, hour int) time.Time {
	return time.Date(2025, 10, day, hour, 0, 0, 0, time.UTC)
}

func projector(roomID int64) []domain.Equipment {
	return []domain.Equipment{{ID: roomID * 10, RoomID: roomID, Name: "Standard Projector"}}
}

// Три комнаты с проектором и одна без: A-101 (30), B-201 (60), C-301 (100), D-401 (40)
func testRooms() []domain.Room {
	return []domain.Room{
		{ID: 1, Name: "A-101", Capacity: 30, Equipment: projector(1)},
		{ID: 2, Name: "B-201", Capacity: 60, Equipment: projector(2)},
		{ID: 3, Name: "C-301", Capacity: 100, Equipment: projector(3)},
		{ID: 4, Name: "D-401", Capacity: 40},
	}
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:               1,
		RoomID:           1,
		TeacherID:        ptr.Ptr(int64(100)),
		ActivityType:     domain.ActivityLecture,
		ActivityName:     "Lecture: LP2",
		RequiredCapacity: 25,
		StartTime:        slot(13, 10),
		EndTime:          slot(13, 12),
	}
}

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(bookings, &fakeRoomRepo{rooms: testRooms()}, fakeTxManager{}, nopLogger{})
}

func TestExecute_MovesToSmallestSufficientRoom(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, TeacherID: ptr.Ptr(int64(100))})
	require.NoError(t, err)

	// D-401 (40 мест) подошла бы по вместимости, но без проектора;
	// перемещение всегда требует исправное оборудование
	assert.Equal(t, "A-101", resp.FromRoom)
	assert.Equal(t, "B-201", resp.ToRoom)
	assert.Equal(t, "Booking moved from A-101 to B-201", resp.Message)
	assert.Equal(t, int64(2), repo.bookings[1].RoomID)
	assert.True(t, repo.bookings[1].IsRelocated)
}

func TestExecute_SkipsBusyRooms(t *testing.T) {
	booking := testBooking()
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking,
		2: {ID: 2, RoomID: 2, StartTime: slot(13, 11), EndTime: slot(13, 13)},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1})
	require.NoError(t, err)

	assert.Equal(t, "C-301", resp.ToRoom)
}

func TestExecute_PreservesOriginalTimeOnce(t *testing.T) {
	booking := testBooking()
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: booking}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1})
	require.NoError(t, err)

	require.NotNil(t, booking.OriginalStartTime)
	assert.Equal(t, slot(13, 10), *booking.OriginalStartTime)

	// повторное перемещение не перезаписывает исходное окно
	_, err = uc.Execute(context.Background(), &Request{BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, slot(13, 10), *booking.OriginalStartTime)
}

func TestExecute_NoAlternativeRoom(t *testing.T) {
	booking := testBooking()
	booking.RequiredCapacity = 150 // больше любой комнаты
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: booking}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1})
	assert.ErrorIs(t, err, ErrNoAlternativeRoom)

	// бронь остается нетронутой
	assert.Equal(t, int64(1), booking.RoomID)
	assert.False(t, booking.IsRelocated)
	assert.Nil(t, booking.OriginalStartTime)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, TeacherID: ptr.Ptr(int64(200))})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_SystemRequestSkipsOwnershipCheck(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1})
	assert.NoError(t, err)
}

func TestExecute_MaintenanceNotRelocatable(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: {
		ID:           1,
		RoomID:       1,
		ActivityType: domain.ActivityMaintenance,
		StartTime:    slot(13, 10),
		EndTime:      slot(13, 11),
	}}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1})
	assert.ErrorIs(t, err, ErrMaintenanceNotRelocatable)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 99})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
