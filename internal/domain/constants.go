package domain

// Department operating rules
const (
	// OpeningHour first hour a room can be booked (09:00)
	OpeningHour = 9
	// ClosingHour all bookings must end by this hour (20:00)
	ClosingHour = 20
	// LunchHour start of the 13:00-14:00 maintenance/lunch block
	LunchHour = 13
	// LunchEndHour end of the maintenance/lunch block
	LunchEndHour = 14
)

// Booking duration bounds, enforced by callers before search
const (
	MinBookingHours = 1
	MaxBookingHours = 4
)

// Maintenance negotiation constants
const (
	DefaultMaintenanceHorizonDays = 3
	MaxMaintenanceHorizonDays     = 30
	MinMaintenanceOffers          = 3
	MaxMaintenanceOffers          = 6
)

// DefaultMaxSuggestions default cap on suggestion slots presented to the caller
const DefaultMaxSuggestions = 10

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
