package utils

import (
	"fmt"
	"time"

	"github.com/suchimauz/calendar-booking-service/internal/config"
)

// StartCurrentDay возвращает новую дату с временем 00:00, таймзона остается прежней
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndCurrentDay возвращает последний момент того же дня
func EndCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartNextDay возвращает новую дату, где день увеличен на 1, время установлено на 00:00
func StartNextDay(t time.Time) time.Time {
	return StartCurrentDay(t.AddDate(0, 0, 1))
}

// SameDay проверяет, что обе даты приходятся на один календарный день
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// BeforeDay проверяет, что день a строго раньше дня b (без учета времени)
func BeforeDay(a, b time.Time) bool {
	return StartCurrentDay(a).Before(StartCurrentDay(b))
}

// ParseTimestamp парсит метку времени записи: сначала RFC3339,
// затем дату со временем без таймзоны, затем дату без времени.
// Для строк без таймзоны подставляется рабочая таймзона из конфига.
func ParseTimestamp(str string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, str)
	if err != nil {
		location := config.TimeZone
		parsed, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			parsed, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %v", str, err)
			}
		}
	}

	return parsed, nil
}
