package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomRepo struct {
	rooms []domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context) ([]domain.Room, error) {
	return f.rooms, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
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

// seqRand детерминированный источник случайности
type seqRand struct{}

func (seqRand) Intn(n int) int { return 0 }
func (seqRand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func newTestUseCase(rooms []domain.Room, bookings []*domain.Booking) *UseCase {
	uc := NewUseCase(&fakeRoomRepo{rooms: rooms}, &fakeBookingRepo{bookings: bookings}, nopLogger{})
	uc.rand = seqRand{}
	return uc
}

// Понедельник 2025-10-13 ... пятница 2025-10-17
func date(day int) time.Time {
	return time.Date(2025, 10, day, 0, 0, 0, 0, time.UTC)
}

func at(day, hour int) time.Time {
	return time.Date(2025, 10, day, hour, 0, 0, 0, time.UTC)
}

func testRooms() []domain.Room {
	return []domain.Room{
		{ID: 1, Name: "A-101", Capacity: 30, Equipment: []domain.Equipment{
			{ID: 10, RoomID: 1, Name: "Standard Projector", IsBroken: false},
		}},
		{ID: 2, Name: "B-201", Capacity: 60},
	}
}

func TestExecute_Primarysearch(t *testing.T) {
	uc := newTestUseCase(testRooms(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RequiredCapacity: 20,
		StartDate:        date(13),
		EndDate:          date(13),
		StartHour:        10,
		DurationHours:    1,
		NeedsEquipment:   false,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.False(t, resp.UsedFallback)

	// наименьшая достаточная комната первой
	assert.Equal(t, "A-101", resp.Slots[0].RoomName)
	assert.Equal(t, "B-201", resp.Slots[1].RoomName)
	for _, s := range resp.Slots {
		assert.False(t, s.IsSuggestion)
		assert.Equal(t, at(13, 10), s.StartTime)
		assert.Equal(t, at(13, 11), s.EndTime)
	}
}

func TestExecute_EquipmentFilter(t *testing.T) {
	uc := newTestUseCase(testRooms(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RequiredCapacity: 20,
		StartDate:        date(13),
		EndDate:          date(13),
		StartHour:        10,
		DurationHours:    1,
		NeedsEquipment:   true,
	})
	require.NoError(t, err)

	// B-201 без проектора
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "A-101", resp.Slots[0].RoomName)
}

func TestExecute_WeekendsSkipped(t *testing.T) {
	uc := newTestUseCase(testRooms(), nil)

	// пятница 17-е .. понедельник 20-е: суббота и воскресенье пропускаются
	resp, err := uc.Execute(context.Background(), &Request{
		RequiredCapacity: 20,
		StartDate:        date(17),
		EndDate:          date(20),
		StartHour:        10,
		DurationHours:    1,
	})
	require.NoError(t, err)

	days := map[int]bool{}
	for _, s := range resp.Slots {
		days[s.Date.Day()] = true
	}
	assert.Equal(t, map[int]bool{17: true, 20: true}, days)
}

func TestExecute_FallbackOnlyWhenPrimaryEmpty(t *testing.T) {
	rooms := testRooms()

	// обе комнаты заняты в 10:00-11:00 в каждый будний день недели
	var bookings []*domain.Booking
	for day := 13; day <= 17; day++ {
		for _, r := range rooms {
			bookings = append(bookings, &domain.Booking{
				RoomID:    r.ID,
				StartTime: at(day, 10),
				EndTime:   at(day, 11),
			})
		}
	}

	uc := newTestUseCase(rooms, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		RequiredCapacity: 20,
		StartDate:        date(13),
		EndDate:          date(17),
		StartHour:        10,
		DurationHours:    1,
	})
	require.NoError(t, err)

	assert.True(t, resp.UsedFallback)
	require.NotEmpty(t, resp.Slots)
	for _, s := range resp.Slots {
		assert.True(t, s.IsSuggestion)
		// исходный час доказанно пуст и в гипотезы не входит
		assert.NotEqual(t, 10, s.StartTime.Hour())
		// обеденный час не предлагается
		assert.NotEqual(t, domain.LunchHour, s.StartTime.Hour())
	}
}

func TestExecute_NoFallbackWhenPrimaryHasSlot(t *testing.T) {
	rooms := testRooms()

	// занята только A-101, B-201 свободна - фаза 1 непуста
	bookings := []*domain.Booking{
		{RoomID: 1, StartTime: at(13, 10), EndTime: at(13, 11)},
	}

	uc := newTestUseCase(rooms, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		RequiredCapacity: 20,
		StartDate:        date(13),
		EndDate:          date(13),
		StartHour:        10,
		DurationHours:    1,
	})
	require.NoError(t, err)

	assert.False(t, resp.UsedFallback)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "B-201", resp.Slots[0].RoomName)
	assert.False(t, resp.Slots[0].IsSuggestion)
}

func TestExecute_SlotOrdering(t *testing.T) {
	uc := newTestUseCase(testRooms(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RequiredCapacity: 20,
		StartDate:        date(13),
		EndDate:          date(14),
		StartHour:        10,
		DurationHours:    1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	for i := 1; i < len(resp.Slots); i++ {
		prev, cur := resp.Slots[i-1], resp.Slots[i]
		if prev.Date.Equal(cur.Date) && prev.StartTime.Equal(cur.StartTime) {
			assert.LessOrEqual(t, prev.RoomCapacity, cur.RoomCapacity)
		} else {
			assert.True(t, prev.StartTime.Before(cur.StartTime) || prev.Date.Before(cur.Date))
		}
	}
}

func TestExecute_SuggestionSampling(t *testing.T) {
	rooms := testRooms()

	// все комнаты заняты в запрошенный час всю неделю
	var bookings []*domain.Booking
	for day := 13; day <= 17; day++ {
		for _, r := range rooms {
			bookings = append(bookings, &domain.Booking{
				RoomID:    r.ID,
				StartTime: at(day, 10),
				EndTime:   at(day, 11),
			})
		}
	}

	uc := newTestUseCase(rooms, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		RequiredCapacity: 20,
		StartDate:        date(13),
		EndDate:          date(17),
		StartHour:        10,
		DurationHours:    1,
		MaxSuggestions:   5,
	})
	require.NoError(t, err)

	assert.True(t, resp.UsedFallback)
	assert.Len(t, resp.Slots, 5)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(testRooms(), nil)

	tests := []struct {
		name string
		req  Request
	}{
		{"нулевая вместимость", Request{StartDate: date(13), EndDate: date(13), StartHour: 10, DurationHours: 1}},
		{"обеденный час", Request{RequiredCapacity: 10, StartDate: date(13), EndDate: date(13), StartHour: 13, DurationHours: 1}},
		{"час вне рабочего дня", Request{RequiredCapacity: 10, StartDate: date(13), EndDate: date(13), StartHour: 20, DurationHours: 1}},
		{"слишком длинный слот", Request{RequiredCapacity: 10, StartDate: date(13), EndDate: date(13), StartHour: 9, DurationHours: 5}},
		{"конец раньше начала", Request{RequiredCapacity: 10, StartDate: date(14), EndDate: date(13), StartHour: 10, DurationHours: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
