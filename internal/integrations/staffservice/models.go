package staffservice

// Teacher модель преподавателя из StaffService
type Teacher struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Course модель курса из StaffService.
// RequiredCapacity используется как требование к вместимости по умолчанию,
// когда бронь привязана к курсу.
type Course struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	Year             int    `json:"year"`
	Semester         int    `json:"semester"`
	RequiredCapacity int    `json:"requiredCapacity"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
