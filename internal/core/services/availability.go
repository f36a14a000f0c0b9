package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/out"
	"github.com/suchimauz/calendar-booking-service/internal/utils"
)

// availabilityForDay — полный проход движка для одного дня:
// генерация кандидатов, запрос занятости у календаря, фильтр конфликтов
func (s *BookingService) availabilityForDay(ctx context.Context, day time.Time, duration time.Duration, now time.Time) ([]domain.Interval, error) {
	schedule := s.daySchedule(day)

	candidates, err := s.generateDaySlots(schedule, duration, now)
	if err != nil {
		return nil, err
	}

	schedule.Booked, err = s.fetchBookedIntervals(ctx, day)
	if err != nil {
		return nil, err
	}

	return filterConflicts(candidates, schedule.Booked), nil
}

func (s *BookingService) GetAvailability(ctx context.Context, date *time.Time, duration time.Duration) domain.AvailabilityResult {
	if duration <= 0 {
		duration = s.defaultDuration()
	}
	now := s.clock.Now()

	// Конкретная дата: считаем только ее, даже если слотов нет
	if date != nil {
		day := utils.StartCurrentDay(date.In(now.Location()))
		return s.availabilityResultForDay(ctx, day, duration, now, 0)
	}

	// Дата не задана: ищем ближайший день со свободными слотами,
	// начиная с завтрашнего, в пределах горизонта из конфига
	firstDay := utils.StartNextDay(now)
	for offset := 0; offset < s.cfg.Booking.MaxLookaheadDays; offset++ {
		day := firstDay.AddDate(0, 0, offset)

		slots, err := s.availabilityForDay(ctx, day, duration, now)
		if err != nil {
			s.logger.Error("availability.scan.fetch_failed", out.LogFields{
				"day":   day,
				"error": err.Error(),
			})
			return domain.AvailabilityResult{
				Found:   false,
				Date:    day,
				Message: fmt.Sprintf("Error getting available slots: %s", err.Error()),
			}
		}

		if len(slots) > 0 {
			s.logger.Debug("availability.scan.found", out.LogFields{
				"day":       day,
				"dayOffset": offset,
			})
			return domain.AvailabilityResult{
				Found:     true,
				Date:      day,
				Message:   availabilityMessage(day, slots),
				Slots:     slotRanges(slots),
				DayOffset: offset,
			}
		}
	}

	return domain.AvailabilityResult{
		Found: false,
		Message: fmt.Sprintf("No available slots found in the next %d days",
			s.cfg.Booking.MaxLookaheadDays),
	}
}

func (s *BookingService) GetNextAvailability(ctx context.Context, timestamp time.Time, duration time.Duration) domain.AvailabilityResult {
	day := timestamp
	return s.GetAvailability(ctx, &day, duration)
}

// availabilityResultForDay собирает результат для одного дня,
// включая сбой уровня дня для прошедших дат
func (s *BookingService) availabilityResultForDay(ctx context.Context, day time.Time, duration time.Duration, now time.Time, dayOffset int) domain.AvailabilityResult {
	slots, err := s.availabilityForDay(ctx, day, duration, now)
	if errors.Is(err, errPastDay) {
		s.logger.Debug("availability.day.in_past", out.LogFields{
			"day": day,
		})
		return domain.AvailabilityResult{
			Found:   false,
			Date:    day,
			Message: "Requested date is before today",
		}
	}
	if err != nil {
		s.logger.Error("availability.day.fetch_failed", out.LogFields{
			"day":   day,
			"error": err.Error(),
		})
		return domain.AvailabilityResult{
			Found:   false,
			Date:    day,
			Message: fmt.Sprintf("Error getting available slots: %s", err.Error()),
		}
	}

	return domain.AvailabilityResult{
		Found:     len(slots) > 0,
		Date:      day,
		Message:   availabilityMessage(day, slots),
		Slots:     slotRanges(slots),
		DayOffset: dayOffset,
	}
}

// conflictAlternatives строит подборку альтернативного времени при
// конфликте бронирования. Занятость запрошенного дня уже получена
// оркестратором и не запрашивается повторно. Если день полностью занят,
// зондируется ровно один следующий день.
func (s *BookingService) conflictAlternatives(ctx context.Context, requestedStart time.Time, booked []domain.Interval, duration time.Duration) domain.AvailabilityResult {
	now := s.clock.Now()
	day := utils.StartCurrentDay(requestedStart)

	schedule := s.daySchedule(day)
	schedule.Booked = booked

	candidates, err := s.generateDaySlots(schedule, duration, now)
	if err != nil {
		// Прошедший день альтернатив не имеет
		candidates = nil
	}
	slots := filterConflicts(candidates, schedule.Booked)

	if len(slots) > 0 {
		return domain.AvailabilityResult{
			Found:     true,
			Date:      day,
			Message:   availabilityMessage(day, slots),
			Slots:     slotRanges(slots),
			DayOffset: 0,
		}
	}

	// Зондируем следующий день, глубина ровно один
	nextDay := utils.StartNextDay(day)
	nextSlots, err := s.availabilityForDay(ctx, nextDay, duration, now)
	if err == nil && len(nextSlots) > 0 {
		return domain.AvailabilityResult{
			Found: true,
			Date:  nextDay,
			Message: "Requested date unavailable, but there is availability on: " +
				availabilityMessage(nextDay, nextSlots),
			Slots:     slotRanges(nextSlots),
			DayOffset: 1,
		}
	}

	return domain.AvailabilityResult{
		Found:   false,
		Date:    day,
		Message: fmt.Sprintf("No available times found on %s", formatDayLong(day)),
	}
}
