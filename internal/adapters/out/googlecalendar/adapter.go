package googlecalendar

import (
	"context"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/suchimauz/calendar-booking-service/internal/config"
	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/out"
	"github.com/suchimauz/calendar-booking-service/internal/utils"
)

// GoogleCalendarAdapter — реализация CalendarPort поверх Google Calendar API.
// Все времена приводятся к рабочей таймзоне сервиса.
type GoogleCalendarAdapter struct {
	service    *calendar.Service
	calendarID string
	location   *time.Location
	logger     out.LoggerPort
}

func NewGoogleCalendarAdapter(ctx context.Context, cfg *config.Config, logger out.LoggerPort) (*GoogleCalendarAdapter, error) {
	client, err := newOAuthClient(ctx, cfg.GoogleCalendar.CredentialsFile, cfg.GoogleCalendar.TokenFile)
	if err != nil {
		logger.Error("googlecalendar.auth.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		logger.Error("googlecalendar.init.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &GoogleCalendarAdapter{
		service:    service,
		calendarID: cfg.GoogleCalendar.CalendarID,
		location:   config.TimeZone,
		logger:     logger,
	}, nil
}

func (a *GoogleCalendarAdapter) ListDayEvents(ctx context.Context, day time.Time) ([]domain.CalendarEvent, error) {
	localDay := day.In(a.location)
	startOfDay := utils.StartCurrentDay(localDay)
	endOfDay := utils.EndCurrentDay(localDay)

	a.logger.Debug("googlecalendar.events.list", out.LogFields{
		"timeMin": startOfDay,
		"timeMax": endOfDay,
	})

	result, err := a.service.Events.List(a.calendarID).
		TimeMin(startOfDay.Format(time.RFC3339)).
		TimeMax(endOfDay.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		a.logger.Error("googlecalendar.events.list_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return a.mapEvents(result.Items), nil
}

func (a *GoogleCalendarAdapter) ListUpcomingEvents(ctx context.Context, from time.Time) ([]domain.CalendarEvent, error) {
	a.logger.Debug("googlecalendar.events.list_upcoming", out.LogFields{
		"timeMin": from,
	})

	result, err := a.service.Events.List(a.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		a.logger.Error("googlecalendar.events.list_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return a.mapEvents(result.Items), nil
}

func (a *GoogleCalendarAdapter) CreateEvent(ctx context.Context, event domain.CalendarEvent) error {
	googleEvent := &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.In(a.location).Format(time.RFC3339),
			TimeZone: a.location.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.In(a.location).Format(time.RFC3339),
			TimeZone: a.location.String(),
		},
	}

	_, err := a.service.Events.Insert(a.calendarID, googleEvent).Context(ctx).Do()
	if err != nil {
		a.logger.Error("googlecalendar.events.insert_failed", out.LogFields{
			"error": err.Error(),
		})
		return err
	}

	a.logger.Info("googlecalendar.events.insert_success", out.LogFields{
		"start": event.Start,
	})
	return nil
}

func (a *GoogleCalendarAdapter) DeleteEvent(ctx context.Context, eventID string) error {
	if err := a.service.Events.Delete(a.calendarID, eventID).Context(ctx).Do(); err != nil {
		a.logger.Error("googlecalendar.events.delete_failed", out.LogFields{
			"eventId": eventID,
			"error":   err.Error(),
		})
		return err
	}

	a.logger.Info("googlecalendar.events.delete_success", out.LogFields{
		"eventId": eventID,
	})
	return nil
}

// mapEvents приводит события Google к доменным. События на весь день
// не имеют компоненты времени и отфильтровываются здесь: до интервальной
// логики ядра они не доходят.
func (a *GoogleCalendarAdapter) mapEvents(items []*calendar.Event) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(items))

	for _, item := range items {
		if item.Start == nil || item.End == nil ||
			item.Start.DateTime == "" || item.End.DateTime == "" {
			continue
		}

		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			a.logger.Warn("googlecalendar.events.bad_start", out.LogFields{
				"eventId": item.Id,
				"value":   item.Start.DateTime,
			})
			continue
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			a.logger.Warn("googlecalendar.events.bad_end", out.LogFields{
				"eventId": item.Id,
				"value":   item.End.DateTime,
			})
			continue
		}

		events = append(events, domain.CalendarEvent{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			Start:       start.In(a.location),
			End:         end.In(a.location),
		})
	}

	return events
}
