package create_booking

import (
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	TeacherID     int64               // ID преподавателя (из заголовка авторизации)
	RoomID        int64               // ID комнаты
	Date          time.Time           // Дата бронирования (без времени)
	StartHour     int                 // Час начала (9-19, кроме 13)
	DurationHours int                 // Длительность в часах (1-4)
	ActivityType  domain.ActivityType // lecture | meeting

	// CourseCode для лекций: вместимость курса становится требованием
	// по умолчанию. Для meeting не указывается.
	CourseCode *string

	// RequiredCapacity явное требование к вместимости (для meeting).
	// Игнорируется, если указан CourseCode.
	RequiredCapacity *int

	NeedsEquipment bool // Нужен ли проектор/оборудование
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                int64
	RoomID            int64
	RoomName          string
	TeacherID         int64
	ActivityType      string
	ActivityName      string
	RequiredCapacity  int
	RequiresEquipment bool
	StartTime         time.Time
	EndTime           time.Time
	CreatedAt         time.Time
}
