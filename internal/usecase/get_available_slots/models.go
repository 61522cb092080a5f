package get_available_slots

import (
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// Request модель запроса на поиск доступных слотов в интервале дат
type Request struct {
	RequiredCapacity int       // Требуемая вместимость
	StartDate        time.Time // Первый день интервала (без времени)
	EndDate          time.Time // Последний день интервала (включительно)
	StartHour        int       // Запрошенный час начала (9-19, кроме 13)
	DurationHours    int       // Длительность в часах (1-4)
	NeedsEquipment   bool      // Нужен ли проектор/оборудование

	// MaxSuggestions ограничивает количество слотов-предложений в ответе
	// (равномерная случайная выборка без повторов). 0 = без ограничения.
	// Чисто презентационный параметр: порядок оставшихся слотов не меняется.
	MaxSuggestions int
}

// Response модель ответа со списком слотов
type Response struct {
	Slots []domain.Slot // Отсортированы по (дата, время начала, вместимость)

	// UsedFallback true, если основной поиск ничего не нашел и слоты
	// получены поиском по альтернативным часам (все они - предложения)
	UsedFallback bool
}
