package domain

import "time"

// Slot is an ephemeral search-result value, never persisted.
// It is produced by the slot search and consumed immediately by the
// caller to create a booking, or discarded.
type Slot struct {
	Date         time.Time
	StartTime    time.Time
	EndTime      time.Time
	RoomID       int64
	RoomName     string
	RoomCapacity int

	// IsSuggestion is true only for slots produced by the hypothesis
	// fallback phase, at a different hour than originally requested
	IsSuggestion bool
}
