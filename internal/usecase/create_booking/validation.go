package create_booking

import (
	"fmt"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// validateRequest валидирует структурные требования запроса
func validateRequest(req *Request) error {
	if req.TeacherID <= 0 {
		return fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ActivityType != domain.ActivityLecture && req.ActivityType != domain.ActivityMeeting {
		return fmt.Errorf("%w: activityType must be lecture or meeting", ErrInvalidInput)
	}

	if req.DurationHours < domain.MinBookingHours || req.DurationHours > domain.MaxBookingHours {
		return fmt.Errorf("%w: durationHours must be between %d and %d",
			ErrInvalidInput, domain.MinBookingHours, domain.MaxBookingHours)
	}

	if req.CourseCode == nil {
		if req.RequiredCapacity == nil || *req.RequiredCapacity <= 0 {
			return fmt.Errorf("%w: requiredCapacity must be positive when no course is given", ErrInvalidInput)
		}
	}

	return nil
}

// validateAdvance проверяет, что бронь делается минимум за день
func validateAdvance(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if !dateOnly.After(today) {
		return ErrDateNotInAdvance
	}
	return nil
}
