package relocate_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("relocate_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит
	// другому преподавателю
	ErrAccessDenied = errors.New("relocate_booking: booking belongs to another teacher")

	// ErrMaintenanceNotRelocatable возвращается при попытке переместить
	// техническое обслуживание
	ErrMaintenanceNotRelocatable = errors.New("relocate_booking: maintenance bookings cannot be relocated")

	// ErrNoAlternativeRoom возвращается, когда ни одна подходящая комната
	// не свободна в окне бронирования
	ErrNoAlternativeRoom = errors.New("relocate_booking: no alternative room available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("relocate_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("relocate_booking: internal error")
)
