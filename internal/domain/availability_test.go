package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomWithProjector(id int64, name string, capacity int, broken bool) Room {
	return Room{
		ID:       id,
		Name:     name,
		Capacity: capacity,
		Equipment: []Equipment{
			{ID: id * 10, RoomID: id, Name: "Standard Projector", IsBroken: broken},
		},
	}
}

func TestFilterSuitableRooms(t *testing.T) {
	roomA := roomWithProjector(1, "A-101", 30, false)
	roomB := Room{ID: 2, Name: "B-201", Capacity: 60} // без проектора
	roomC := roomWithProjector(3, "C-301", 15, false)
	roomD := roomWithProjector(4, "D-401", 40, true) // проектор сломан

	rooms := []Room{roomB, roomA, roomD, roomC}

	t.Run("сортировка по вместимости по возрастанию", func(t *testing.T) {
		got := FilterSuitableRooms(rooms, 0, false)
		require.Len(t, got, 4)
		assert.Equal(t, []int64{3, 1, 4, 2}, []int64{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
	})

	t.Run("фильтрация по вместимости", func(t *testing.T) {
		got := FilterSuitableRooms(rooms, 35, false)
		require.Len(t, got, 2)
		assert.Equal(t, "D-401", got[0].Name)
		assert.Equal(t, "B-201", got[1].Name)
	})

	t.Run("фильтрация по работающему оборудованию", func(t *testing.T) {
		got := FilterSuitableRooms(rooms, 20, true)
		// B без проектора, D со сломанным, C слишком маленькая
		require.Len(t, got, 1)
		assert.Equal(t, "A-101", got[0].Name)
	})

	t.Run("вместимость не убывает", func(t *testing.T) {
		got := FilterSuitableRooms(rooms, 0, false)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Capacity, got[i].Capacity)
		}
	})
}

func TestBookingOverlaps(t *testing.T) {
	day := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	b := &Booking{StartTime: at(10), EndTime: at(12)}

	assert.True(t, b.Overlaps(at(11), at(13)))
	assert.True(t, b.Overlaps(at(9), at(11)))
	assert.True(t, b.Overlaps(at(10), at(12)))
	assert.True(t, b.Overlaps(at(9), at(13)))

	// граничащие интервалы не конфликтуют
	assert.False(t, b.Overlaps(at(12), at(13)))
	assert.False(t, b.Overlaps(at(9), at(10)))
}

func TestIsAvailableAndHasConflict(t *testing.T) {
	day := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	existing := []*Booking{
		{StartTime: at(9), EndTime: at(10)},
		{StartTime: at(11), EndTime: at(12)},
	}

	assert.True(t, IsAvailable(existing, at(10), at(11)))
	assert.False(t, IsAvailable(existing, at(9), at(11)))

	assert.False(t, HasConflict(existing))
	assert.True(t, HasConflict(append(existing, &Booking{StartTime: at(9), EndTime: at(12)})))
}
