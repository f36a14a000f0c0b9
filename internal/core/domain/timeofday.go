package domain

import (
	"fmt"
	"time"
)

// TimeOfDay — время внутри одного рабочего дня (часы и минуты),
// сравнивается по суммарным минутам от полуночи.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// TimeOfDayFromTime берет только часы и минуты из полной даты
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

// IsValid проверяет инвариант [00:00, 24:00)
func (t TimeOfDay) IsValid() bool {
	return t.TotalMinutes() >= 0 && t.TotalMinutes() < 24*60
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.TotalMinutes() < other.TotalMinutes()
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.TotalMinutes() > other.TotalMinutes()
}

func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.TotalMinutes() == other.TotalMinutes()
}

// Add возвращает новое время, сдвинутое на minutes минут вперед.
// Значение не нормализуется по модулю суток: конец слота может
// оказаться ровно на границе закрытия.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	total := t.TotalMinutes() + minutes
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// OnDate собирает полную дату из дня и времени, таймзона берется из дня
func (t TimeOfDay) OnDate(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// String возвращает время в формате HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
