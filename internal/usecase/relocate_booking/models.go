package relocate_booking

import "time"

// Request модель запроса на перемещение бронирования.
// TeacherID задается для запросов от преподавателя (проверка владения);
// nil означает системный запрос (каскад при поломке оборудования).
type Request struct {
	BookingID int64
	TeacherID *int64
}

// Response модель ответа с результатом перемещения
type Response struct {
	BookingID int64
	FromRoom  string
	ToRoom    string
	StartTime time.Time
	EndTime   time.Time
	Message   string
}
