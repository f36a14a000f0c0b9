package domain

import "time"

// DaySchedule — расписание одного дня: рабочие часы и занятые интервалы.
// Занятые интервалы приходят от внешнего календаря на каждый запрос,
// они не кэшируются и могут быть не отсортированы.
type DaySchedule struct {
	Date          time.Time
	BusinessStart TimeOfDay
	BusinessEnd   TimeOfDay
	Booked        []Interval
}
