package domain

import "time"

// ActivityType represents the kind of activity a booking is for
type ActivityType string

const (
	ActivityLecture     ActivityType = "lecture"
	ActivityMeeting     ActivityType = "meeting"
	ActivityMaintenance ActivityType = "maintenance"
)

// IsValid returns true for a known activity type
func (t ActivityType) IsValid() bool {
	return t == ActivityLecture || t == ActivityMeeting || t == ActivityMaintenance
}

// Booking represents a room reservation.
// StartTime/EndTime are timezone-naive local timestamps aligned to the hour;
// EndTime-StartTime is always a whole number of hours.
type Booking struct {
	ID     int64
	RoomID int64

	// TeacherID is nil for maintenance bookings
	TeacherID *int64

	ActivityType ActivityType
	ActivityName string

	// RequiredCapacity capacity the activity needs; 0 when undeterminable
	RequiredCapacity  int
	RequiresEquipment bool

	StartTime time.Time
	EndTime   time.Time

	// Relocation history: set exactly once, on the first relocation.
	// IsRelocated never reverts to false.
	OriginalStartTime *time.Time
	OriginalEndTime   *time.Time
	IsRelocated       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMaintenance returns true for maintenance bookings (no teacher attached)
func (b *Booking) IsMaintenance() bool {
	return b.ActivityType == ActivityMaintenance
}

// IsOwnedBy returns true if the booking belongs to the given teacher
func (b *Booking) IsOwnedBy(teacherID int64) bool {
	return b.TeacherID != nil && *b.TeacherID == teacherID
}

// Overlaps reports whether the booking intersects the half-open
// interval [start, end). Boundary-touching intervals do not conflict.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}
