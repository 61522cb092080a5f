package get_available_slots

import (
	"sort"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// dateAtHour строит момент времени "дата + час:00" в зоне даты
func dateAtHour(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

// sortSlots сортирует слоты по (дата, время начала, вместимость комнаты).
// Сортировка стабильная: комнаты равной вместимости сохраняют исходный порядок.
func sortSlots(slots []domain.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		if !slots[i].StartTime.Equal(slots[j].StartTime) {
			return slots[i].StartTime.Before(slots[j].StartTime)
		}
		return slots[i].RoomCapacity < slots[j].RoomCapacity
	})
}

// sampleSlots равномерно без повторов выбирает не более max слотов,
// сохраняя их относительный порядок. При max <= 0 или достаточно коротком
// списке возвращает вход без изменений.
func sampleSlots(slots []domain.Slot, max int, rng RandProvider) []domain.Slot {
	if max <= 0 || len(slots) <= max {
		return slots
	}

	chosen := rng.Perm(len(slots))[:max]
	sort.Ints(chosen)

	sampled := make([]domain.Slot, 0, max)
	for _, idx := range chosen {
		sampled = append(sampled, slots[idx])
	}
	return sampled
}

// candidateHours возвращает часы для поиска-гипотезы: все рабочие часы,
// кроме обеденного и кроме исходно запрошенного (он уже доказанно пуст)
func candidateHours(requestedHour int) []int {
	hours := make([]int, 0, domain.ClosingHour-domain.OpeningHour)
	for h := domain.OpeningHour; h < domain.ClosingHour; h++ {
		if h == domain.LunchHour || h == requestedHour {
			continue
		}
		hours = append(hours, h)
	}
	return hours
}
