package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	roomRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/room"
	"github.com/dmfaustino/DEI-RoomService/internal/integrations/staffservice"
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

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, roomID int64, start, end time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range append(f.existing, f.created...) {
		if b.RoomID == roomID && b.Overlaps(start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeStaffClient struct {
	teachers map[int64]*staffservice.Teacher
	courses  map[string]*staffservice.Course
}

func (f *fakeStaffClient) GetTeacher(_ context.Context, id int64) (*staffservice.Teacher, error) {
	t, ok := f.teachers[id]
	if !ok {
		return nil, staffservice.ErrTeacherNotFound
	}
	return t, nil
}

func (f *fakeStaffClient) GetCourse(_ context.Context, code string) (*staffservice.Course, error) {
	c, ok := f.courses[code]
	if !ok {
		return nil, staffservice.ErrCourseNotFound
	}
	return c, nil
}

// now = воскресенье 2025-10-12; брони на понедельник 13-е корректны
var testNow = time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC)

func date(day int) time.Time {
	return time.Date(2025, 10, day, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "A-101", Capacity: 30, Equipment: []domain.Equipment{
			{ID: 10, RoomID: 1, Name: "Standard Projector"},
		}},
		2: {ID: 2, Name: "B-201", Capacity: 60},
	}}
	staff := &fakeStaffClient{
		teachers: map[int64]*staffservice.Teacher{100: {ID: 100, Name: "Ana Silva"}},
		courses:  map[string]*staffservice.Course{"LP2": {Code: "LP2", Name: "LP2", RequiredCapacity: 45}},
	}

	uc := NewUseCase(bookings, rooms, staff, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		TeacherID:        100,
		RoomID:           1,
		Date:             date(13),
		StartHour:        10,
		DurationHours:    2,
		ActivityType:     domain.ActivityMeeting,
		RequiredCapacity: ptr.Ptr(20),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "A-101", resp.RoomName)
	assert.Equal(t, "Meeting", resp.ActivityName)
	assert.Equal(t, time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC), resp.StartTime)
	assert.Equal(t, time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC), resp.EndTime)
	require.Len(t, repo.created, 1)
	require.NotNil(t, repo.created[0].TeacherID)
	assert.Equal(t, int64(100), *repo.created[0].TeacherID)
}

func TestExecute_CourseCapacityDefault(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.RoomID = 2 // вместимость курса 45 > 30 (A-101)
	req.ActivityType = domain.ActivityLecture
	req.CourseCode = ptr.Ptr("LP2")
	req.RequiredCapacity = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 45, resp.RequiredCapacity)
	assert.Equal(t, "Lecture: LP2", resp.ActivityName)
}

func TestExecute_RoomTooSmallForCourse(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.ActivityType = domain.ActivityLecture
	req.CourseCode = ptr.Ptr("LP2") // 45 мест, комната A-101 только 30
	req.RequiredCapacity = nil

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomTooSmall)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{
			RoomID:    1,
			StartTime: time.Date(2025, 10, 13, 11, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC),
		},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.created)
}

func TestExecute_BoundaryTouchingDoesNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{
			RoomID:    1,
			StartTime: time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 10, 13, 13, 0, 0, 0, time.UTC),
		},
	}}
	uc := newTestUseCase(repo)

	// 10:00-12:00 граничит с существующей бронью 12:00-13:00
	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_NoDoubleBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// повторный идентичный запрос видит созданную бронь и отклоняется
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// инвариант: у одной комнаты нет пересекающихся броней
	assert.False(t, domain.HasConflict(repo.created))
}

func TestExecute_EquipmentRequired(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.RoomID = 2 // B-201 без проектора
	req.NeedsEquipment = true

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoWorkingEquipment)
}

func TestExecute_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"неизвестный преподаватель", func(r *Request) { r.TeacherID = 999 }, ErrTeacherNotFound},
		{"неизвестная комната", func(r *Request) { r.RoomID = 999 }, ErrRoomNotFound},
		{"неизвестный курс", func(r *Request) {
			r.ActivityType = domain.ActivityLecture
			r.CourseCode = ptr.Ptr("NOPE")
			r.RequiredCapacity = nil
		}, ErrCourseNotFound},
		{"бронь день в день", func(r *Request) { r.Date = date(12) }, ErrDateNotInAdvance},
		{"выходной", func(r *Request) { r.Date = date(18) }, ErrInvalidTimeSlot},
		{"пересекает обед", func(r *Request) { r.StartHour = 12 }, ErrInvalidTimeSlot},
		{"maintenance как тип", func(r *Request) { r.ActivityType = domain.ActivityMaintenance }, ErrInvalidInput},
		{"слишком длинная бронь", func(r *Request) { r.DurationHours = 5 }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
