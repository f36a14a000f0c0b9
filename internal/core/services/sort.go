package services

import "github.com/suchimauz/calendar-booking-service/internal/core/domain"

type IntervalSlice []domain.Interval

// quickSort — сортировка интервалов по времени начала
func (s IntervalSlice) quickSort() IntervalSlice {
	if len(s) < 2 {
		return s
	}

	// Выбираем опорный элемент
	pivot := s[len(s)/2]

	less := IntervalSlice{}
	equal := IntervalSlice{}
	greater := IntervalSlice{}

	for _, interval := range s {
		if interval.Start.Before(pivot.Start) {
			less = append(less, interval)
		} else if interval.Start.Equal(pivot.Start) {
			equal = append(equal, interval)
		} else {
			greater = append(greater, interval)
		}
	}

	// Рекурсивно сортируем подмассивы и объединяем их
	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}
