package services

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/calendar-booking-service/internal/config"
	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/out"
)

// Логгер-заглушка, в тестах вывод не нужен
type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields)               {}
func (nopLogger) Info(string, out.LogFields)                {}
func (nopLogger) Warn(string, out.LogFields)                {}
func (nopLogger) Error(string, out.LogFields)               {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

// Часы с фиксированным временем
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeCalendar — календарь в памяти, пишет все мутации для проверок
type fakeCalendar struct {
	events      map[string][]domain.CalendarEvent
	upcoming    []domain.CalendarEvent
	busyAllDays bool

	listErr    error
	createErr  error
	deleteErrs map[string]error

	created   []domain.CalendarEvent
	deleted   []string
	listCalls int
	nextID    int
}

func newFakeCalendar() *fakeCalendar {
	return &fakeCalendar{
		events:     make(map[string][]domain.CalendarEvent),
		deleteErrs: make(map[string]error),
	}
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (c *fakeCalendar) addEvent(event domain.CalendarEvent) {
	if event.ID == "" {
		event.ID = "seed-" + dayKey(event.Start)
	}
	key := dayKey(event.Start)
	c.events[key] = append(c.events[key], event)
}

func (c *fakeCalendar) ListDayEvents(_ context.Context, day time.Time) ([]domain.CalendarEvent, error) {
	c.listCalls++
	if c.listErr != nil {
		return nil, c.listErr
	}
	if c.busyAllDays {
		return []domain.CalendarEvent{{
			ID:    "busy-" + dayKey(day),
			Start: time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location()),
			End:   time.Date(day.Year(), day.Month(), day.Day(), 17, 0, 0, 0, day.Location()),
		}}, nil
	}
	return c.events[dayKey(day)], nil
}

func (c *fakeCalendar) ListUpcomingEvents(_ context.Context, _ time.Time) ([]domain.CalendarEvent, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.upcoming, nil
}

func (c *fakeCalendar) CreateEvent(_ context.Context, event domain.CalendarEvent) error {
	if c.createErr != nil {
		return c.createErr
	}
	c.nextID++
	event.ID = fmt.Sprintf("evt-%d", c.nextID)
	c.created = append(c.created, event)
	key := dayKey(event.Start)
	c.events[key] = append(c.events[key], event)
	return nil
}

func (c *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	if err := c.deleteErrs[eventID]; err != nil {
		return err
	}
	c.deleted = append(c.deleted, eventID)
	for key, events := range c.events {
		kept := events[:0]
		for _, event := range events {
			if event.ID != eventID {
				kept = append(kept, event)
			}
		}
		c.events[key] = kept
	}
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.BusinessStartHour = 9
	cfg.Booking.BusinessEndHour = 17
	cfg.Booking.GranularityMinutes = 30
	cfg.Booking.DefaultDuration = 30
	cfg.Booking.MaxLookaheadDays = 14
	return cfg
}

func newTestService(calendar *fakeCalendar, now time.Time) *BookingService {
	return NewBookingService(calendar, fixedClock{now: now}, nopLogger{}, testConfig())
}

// Понедельник, 10 марта 2025, полдень — базовое "сейчас" для тестов
func testNow() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func dayAt(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func interval(startHour, startMinute, endHour, endMinute int) domain.Interval {
	return domain.NewInterval(
		domain.NewTimeOfDay(startHour, startMinute),
		domain.NewTimeOfDay(endHour, endMinute),
	)
}
