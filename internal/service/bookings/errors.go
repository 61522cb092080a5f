package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("service.bookings: booking not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("service.bookings: room not found")

	// ErrTeacherNotFound возвращается, когда преподаватель не зарегистрирован
	ErrTeacherNotFound = errors.New("service.bookings: teacher not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит
	// другому преподавателю
	ErrAccessDenied = errors.New("service.bookings: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.bookings: internal error")
)
