package schedule_maintenance

import (
	"sort"
	"time"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
)

// pickOffers выбирает итоговый набор предложений из свободных окон.
// Целевое число предложений выбирается равновероятно из [MinMaintenanceOffers,
// MaxMaintenanceOffers]. Обеденные окна входят в пул с двойным весом: ремонт
// в обед не мешает занятиям, поэтому такие окна предлагаются чаще. Если есть
// хотя бы одно обеденное окно, минимум одно попадает в выдачу.
// Результат отсортирован по времени начала.
func pickOffers(lunch, other []domain.Slot, rnd RandProvider) []domain.Slot {
	total := len(lunch) + len(other)
	if total == 0 {
		return nil
	}

	target := domain.MinMaintenanceOffers +
		rnd.Intn(domain.MaxMaintenanceOffers-domain.MinMaintenanceOffers+1)
	if target > total {
		target = total
	}

	chosen := make([]domain.Slot, 0, target)
	seen := make(map[time.Time]bool, target)

	// Гарантированное обеденное окно
	if len(lunch) > 0 {
		s := lunch[rnd.Intn(len(lunch))]
		chosen = append(chosen, s)
		seen[s.StartTime] = true
	}

	// Взвешенный пул: обычные окна один раз, обеденные дважды
	pool := make([]domain.Slot, 0, len(other)+2*len(lunch))
	pool = append(pool, other...)
	pool = append(pool, lunch...)
	pool = append(pool, lunch...)

	for _, idx := range rnd.Perm(len(pool)) {
		if len(chosen) >= target {
			break
		}
		s := pool[idx]
		if seen[s.StartTime] {
			continue
		}
		seen[s.StartTime] = true
		chosen = append(chosen, s)
	}

	sort.Slice(chosen, func(i, j int) bool {
		return chosen[i].StartTime.Before(chosen[j].StartTime)
	})
	return chosen
}

// isLunchSlot сообщает, начинается ли часовое окно в обеденный час
func isLunchSlot(s domain.Slot) bool {
	return s.StartTime.Hour() == domain.LunchHour
}
