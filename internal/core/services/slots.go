package services

import (
	"errors"
	"time"

	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
	"github.com/suchimauz/calendar-booking-service/internal/utils"
)

// errPastDay — сбой уровня дня: запрошенная дата уже прошла,
// слоты для нее не генерируются вовсе
var errPastDay = errors.New("requested date is before today")

// generateDaySlots строит кандидатные слоты одного дня: начиная с открытия,
// с шагом сетки из конфига, каждый длиной duration. Слот, чей конец
// пересекает время закрытия, не создается — хвост отбрасывается, а не
// усекается. Для сегодняшнего дня исключаются слоты, начало которых
// не строго в будущем относительно now.
func (s *BookingService) generateDaySlots(schedule domain.DaySchedule, duration time.Duration, now time.Time) ([]domain.Interval, error) {
	if utils.BeforeDay(schedule.Date, now) {
		return nil, errPastDay
	}

	durationMinutes := int(duration.Minutes())
	granularity := s.cfg.Booking.GranularityMinutes

	isToday := utils.SameDay(schedule.Date, now)
	nowTime := domain.TimeOfDayFromTime(now)

	slots := make([]domain.Interval, 0)
	for start := schedule.BusinessStart; ; start = start.Add(granularity) {
		end := start.Add(durationMinutes)
		if end.After(schedule.BusinessEnd) {
			break
		}
		if isToday && !start.After(nowTime) {
			continue
		}
		slots = append(slots, domain.NewInterval(start, end))
	}

	return slots, nil
}
