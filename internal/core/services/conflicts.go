package services

import "github.com/suchimauz/calendar-booking-service/internal/core/domain"

// filterConflicts отбрасывает кандидатов, пересекающихся хотя бы с одним
// занятым интервалом. Порядок кандидатов сохраняется, дедупликация не
// нужна: кандидаты — разбиение дня по шагу сетки.
func filterConflicts(candidates, booked []domain.Interval) []domain.Interval {
	available := make([]domain.Interval, 0, len(candidates))

	for _, candidate := range candidates {
		conflict := false
		for _, bookedInterval := range booked {
			if candidate.Overlaps(bookedInterval) {
				conflict = true
				break
			}
		}
		if !conflict {
			available = append(available, candidate)
		}
	}

	return available
}
