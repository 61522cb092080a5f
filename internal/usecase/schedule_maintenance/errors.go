package schedule_maintenance

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("schedule_maintenance: room not found")

	// ErrInvalidTimeSlot возвращается, когда окно обслуживания нарушает
	// правила работы (выходной, нерабочие часы)
	ErrInvalidTimeSlot = errors.New("schedule_maintenance: invalid time slot")

	// ErrDateNotInAdvance возвращается, когда обслуживание планируется
	// не заранее (минимум за день)
	ErrDateNotInAdvance = errors.New("schedule_maintenance: maintenance must be scheduled at least one day in advance")

	// ErrSlotNotAvailable возвращается, когда комната занята в запрошенное окно
	ErrSlotNotAvailable = errors.New("schedule_maintenance: room is already booked for this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_maintenance: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_maintenance: internal error")
)
