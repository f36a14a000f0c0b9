package json_types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/suchimauz/calendar-booking-service/internal/config"
)

func parseTimestamp(str string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, str)
	// Если не удалось, пробуем дату со временем, но без таймзоны
	// Для таких строк подставляем рабочую таймзону из конфига
	if err != nil {
		location := config.TimeZone
		parsed, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsed, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse timestamp: %v", err)
			}
		}
	}

	return parsed, nil
}

// DateTime — метка времени записи в формате 'YYYY-MM-DDTHH:MM:SS'
// (формат, в котором внешние вызыватели передают время приема)
type DateTime struct {
	Date time.Time
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("invalid timestamp: %s", string(data))
	}
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsed, err := parseTimestamp(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsed}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02T15:04:05"))
}

func (t DateTime) IsZero() bool {
	return t.Date.IsZero()
}

// Date — календарная дата в формате 'YYYY-MM-DD'
type Date struct {
	Date time.Time
}

func (t *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 {
		return fmt.Errorf("invalid date: %s", string(data))
	}
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsed, err := parseTimestamp(str)
	if err != nil {
		return err
	}

	*t = Date{Date: parsed}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return json.Marshal(nil)
	}

	return json.Marshal(t.Date.Format("2006-01-02"))
}

func (t Date) IsZero() bool {
	return t.Date.IsZero()
}
