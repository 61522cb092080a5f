package get_available_slots

import (
	"fmt"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Ограничение длительности (1-4 часа) принадлежит вызывающей стороне
// и проверяется здесь, до запуска поиска.
func validateRequest(req *Request) error {
	if req.RequiredCapacity <= 0 {
		return fmt.Errorf("%w: requiredCapacity must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	if req.StartHour < domain.OpeningHour || req.StartHour >= domain.ClosingHour {
		return fmt.Errorf("%w: startHour must be between %d and %d",
			ErrInvalidInput, domain.OpeningHour, domain.ClosingHour-1)
	}

	if req.StartHour == domain.LunchHour {
		return fmt.Errorf("%w: %d:00 is reserved for maintenance/lunch", ErrInvalidInput, domain.LunchHour)
	}

	if req.DurationHours < domain.MinBookingHours || req.DurationHours > domain.MaxBookingHours {
		return fmt.Errorf("%w: durationHours must be between %d and %d",
			ErrInvalidInput, domain.MinBookingHours, domain.MaxBookingHours)
	}

	if req.MaxSuggestions < 0 {
		return fmt.Errorf("%w: maxSuggestions must not be negative", ErrInvalidInput)
	}

	return nil
}
