package domain

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// FilterSuitableRooms returns the rooms that can host an activity with the
// given capacity requirement, sorted ascending by capacity so that the
// smallest sufficient room comes first. Ties keep the original order.
// When needsEquipment is set, rooms without working equipment are dropped.
func FilterSuitableRooms(rooms []Room, requiredCapacity int, needsEquipment bool) []Room {
	suitable := lo.Filter(rooms, func(r Room, _ int) bool {
		return r.Capacity >= requiredCapacity
	})

	if needsEquipment {
		suitable = lo.Filter(suitable, func(r Room, _ int) bool {
			return r.HasWorkingEquipment()
		})
	}

	sorted := make([]Room, len(suitable))
	copy(sorted, suitable)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})

	return sorted
}

// IsAvailable reports whether a room with the given existing bookings is
// free over [start, end). Recomputed predicate, replaces the inferred
// "AvailableRoom" class membership of the legacy system.
func IsAvailable(existing []*Booking, start, end time.Time) bool {
	for _, b := range existing {
		if b.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// HasConflict reports whether any two bookings of the same room overlap.
// Recomputed predicate, replaces the inferred "OverbookedRoom" class.
func HasConflict(bookings []*Booking) bool {
	for i := 0; i < len(bookings); i++ {
		for j := i + 1; j < len(bookings); j++ {
			if bookings[i].Overlaps(bookings[j].StartTime, bookings[j].EndTime) {
				return true
			}
		}
	}
	return false
}
