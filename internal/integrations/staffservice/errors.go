package staffservice

import "errors"

var (
	// ErrTeacherNotFound возвращается, когда преподаватель не зарегистрирован
	ErrTeacherNotFound = errors.New("teacher not found")

	// ErrCourseNotFound возвращается, когда курс не зарегистрирован
	ErrCourseNotFound = errors.New("course not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
