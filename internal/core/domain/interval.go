package domain

// Interval — занятый или кандидатный промежуток времени внутри одного дня.
// Значение неизменяемое, инвариант Start < End.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewInterval(start, end TimeOfDay) Interval {
	return Interval{Start: start, End: end}
}

// Overlaps проверяет пересечение двух интервалов по четырем случаям:
// начало a внутри b, конец a внутри b, a содержит b, b содержит a.
// Простая проверка полуоткрытых границ ломается, когда один интервал
// полностью содержит другой с иной длительностью.
func (i Interval) Overlaps(other Interval) bool {
	aStart, aEnd := i.Start.TotalMinutes(), i.End.TotalMinutes()
	bStart, bEnd := other.Start.TotalMinutes(), other.End.TotalMinutes()

	switch {
	case aStart >= bStart && aStart < bEnd:
		// начало a внутри b
		return true
	case aEnd > bStart && aEnd <= bEnd:
		// конец a внутри b
		return true
	case aStart <= bStart && aEnd >= bEnd:
		// a содержит b
		return true
	case aStart >= bStart && aEnd <= bEnd:
		// b содержит a
		return true
	}

	return false
}

// Contiguous — начинается ли other ровно там, где заканчивается i
func (i Interval) Contiguous(other Interval) bool {
	return i.End.Equal(other.Start)
}
