package availability

import (
	"sort"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// FindConflict ищет первую одобренную заявку на тот же ресурс и день,
// интервал которой пересекается с кандидатом. Заявки в статусах pending и rejected не участвуют.
// Порядок обхода совпадает с порядком реестра.
func (s *Service) FindConflict(resourceID string, date types.Date, candidate domain.Interval) (*domain.Request, bool) {
	for _, existing := range s.ledger.ApprovedOn(resourceID, date) {
		if domain.Overlaps(existing.Interval(), candidate) {
			found := existing
			return &found, true
		}
	}
	return nil, false
}

// occupiedMinutes считает минуты окна, покрытые одобренными заявками.
// Пересекающиеся заявки (ошибка ввода администратора) не учитываются дважды.
func occupiedMinutes(window domain.Interval, approved []domain.Request) int {
	clipped := make([]domain.Interval, 0, len(approved))
	for _, r := range approved {
		c := r.Interval().Clip(window)
		if c.Minutes() > 0 {
			clipped = append(clipped, c)
		}
	}
	if len(clipped) == 0 {
		return 0
	}

	sort.Slice(clipped, func(i, j int) bool {
		return clipped[i].Start.IsBefore(clipped[j].Start)
	})

	total := 0
	current := clipped[0]
	for _, next := range clipped[1:] {
		if next.Start.IsAfter(current.End) {
			total += current.Minutes()
			current = next
			continue
		}
		if next.End.IsAfter(current.End) {
			current.End = next.End
		}
	}
	total += current.Minutes()

	return total
}
