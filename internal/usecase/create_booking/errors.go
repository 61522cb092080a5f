package create_booking

import "errors"

var (
	// ErrTeacherNotFound возвращается, когда преподаватель не зарегистрирован
	ErrTeacherNotFound = errors.New("create_booking: teacher not found")

	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("create_booking: course not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrInvalidTimeSlot возвращается, когда окно нарушает правила работы
	// (выходной, нерабочие часы, обеденный блок, не по часу)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrDateNotInAdvance возвращается, когда бронь делается не заранее
	// (минимум за день)
	ErrDateNotInAdvance = errors.New("create_booking: bookings must be made at least one day in advance")

	// ErrRoomTooSmall возвращается, когда вместимости комнаты недостаточно
	ErrRoomTooSmall = errors.New("create_booking: room capacity is not sufficient")

	// ErrNoWorkingEquipment возвращается, когда требуется оборудование,
	// а в комнате нет исправного
	ErrNoWorkingEquipment = errors.New("create_booking: room has no working equipment")

	// ErrSlotNotAvailable возвращается, когда комната занята в запрошенное окно
	ErrSlotNotAvailable = errors.New("create_booking: room is already booked for this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
