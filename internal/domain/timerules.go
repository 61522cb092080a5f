package domain

import "time"

// Rejection reasons returned by ValidateTimeSlot
const (
	ReasonWeekend        = "rooms are closed on Saturdays and Sundays"
	ReasonOutsideHours   = "rooms are only available from 09:00 to 20:00"
	ReasonLunchBlock     = "13:00-14:00 is reserved for maintenance/lunch"
	ReasonNotHourAligned = "bookings must be in exact hourly blocks"
)

// ValidateTimeSlot checks a requested [start, end) window against the
// department operating rules. Pure and total: no I/O, no panics for
// well-typed input. Rules are evaluated in order, first failure wins:
//
//  1. no weekends
//  2. operating hours 09:00-20:00
//  3. the window must not cross into the 13:00-14:00 block
//     (the test is on hour boundaries, deliberately kept as-is)
//  4. start and end must align to the hour
func ValidateTimeSlot(start, end time.Time) (bool, string) {
	if wd := start.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false, ReasonWeekend
	}

	if start.Hour() < OpeningHour || end.Hour() > ClosingHour ||
		(end.Hour() == ClosingHour && end.Minute() > 0) {
		return false, ReasonOutsideHours
	}

	if start.Hour() < LunchEndHour && end.Hour() > LunchHour {
		return false, ReasonLunchBlock
	}

	if start.Minute() != 0 || end.Minute() != 0 {
		return false, ReasonNotHourAligned
	}

	return true, ""
}

// IsWeekend returns true for Saturday and Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
