package domain

import (
	"fmt"
	"strings"
	"time"
)

// CalendarEvent — событие внешнего календаря. ID непрозрачный,
// назначается хранилищем при создании.
type CalendarEvent struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// PhoneDescription формирует описание события с номером телефона.
// Номер в описании — единственный ключ для поиска и отмены записи.
func PhoneDescription(phoneNumber string) string {
	return fmt.Sprintf("Phone: %s", phoneNumber)
}

// MatchesPhone проверяет, принадлежит ли событие клиенту с этим номером
func (e CalendarEvent) MatchesPhone(phoneNumber string) bool {
	return strings.Contains(e.Description, PhoneDescription(phoneNumber))
}

// Interval возвращает промежуток события как интервал внутри дня
func (e CalendarEvent) Interval() Interval {
	return Interval{
		Start: TimeOfDayFromTime(e.Start),
		End:   TimeOfDayFromTime(e.End),
	}
}
