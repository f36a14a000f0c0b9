package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/suchimauz/calendar-booking-service/internal/config"
	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/out"
)

// BookingService — движок бронирования: проверка запрошенного времени,
// генерация свободных слотов и оркестрация операций с внешним календарем.
// Один вызов обрабатывает ровно одну операцию, общего состояния нет:
// все данные о занятости запрашиваются у календаря заново на каждый вызов.
type BookingService struct {
	calendar out.CalendarPort
	clock    out.ClockPort
	logger   out.LoggerPort
	cfg      *config.Config
}

func NewBookingService(
	calendar out.CalendarPort,
	clock out.ClockPort,
	logger out.LoggerPort,
	cfg *config.Config,
) *BookingService {
	return &BookingService{
		calendar: calendar,
		clock:    clock,
		logger:   logger.WithModule("BookingService"),
		cfg:      cfg,
	}
}

func (s *BookingService) businessStart() domain.TimeOfDay {
	return domain.NewTimeOfDay(s.cfg.Booking.BusinessStartHour, 0)
}

func (s *BookingService) businessEnd() domain.TimeOfDay {
	return domain.NewTimeOfDay(s.cfg.Booking.BusinessEndHour, 0)
}

func (s *BookingService) defaultDuration() time.Duration {
	return time.Duration(s.cfg.Booking.DefaultDuration) * time.Minute
}

// daySchedule собирает расписание дня с рабочими часами из конфига,
// занятость заполняется позже из календаря
func (s *BookingService) daySchedule(day time.Time) domain.DaySchedule {
	return domain.DaySchedule{
		Date:          day,
		BusinessStart: s.businessStart(),
		BusinessEnd:   s.businessEnd(),
	}
}

// fetchBookedIntervals запрашивает события дня у календаря и приводит их
// к интервалам внутри дня. События на весь день отфильтрованы адаптером.
func (s *BookingService) fetchBookedIntervals(ctx context.Context, day time.Time) ([]domain.Interval, error) {
	events, err := s.calendar.ListDayEvents(ctx, day)
	if err != nil {
		return nil, err
	}

	booked := make([]domain.Interval, 0, len(events))
	for _, event := range events {
		booked = append(booked, event.Interval())
	}

	return booked, nil
}

func (s *BookingService) BookAppointment(ctx context.Context, request domain.AppointmentRequest) domain.BookingResult {
	request = request.WithDefaults()

	s.logger.Info("booking.create.started", out.LogFields{
		"name":      request.Name,
		"startTime": request.StartTime,
		"duration":  request.Duration.String(),
	})

	// Валидация до любого обращения к календарю
	if request.Name == "" || request.PhoneNumber == "" || request.StartTime.IsZero() {
		return domain.BookingResult{
			Status:  domain.BookingStatusRejected,
			Message: "Name, timestamp, and phone number are required",
		}
	}

	requested := request.Interval()
	if request.StartTime.Hour() < s.cfg.Booking.BusinessStartHour ||
		request.StartTime.Hour() >= s.cfg.Booking.BusinessEndHour ||
		requested.End.After(s.businessEnd()) {
		s.logger.Debug("booking.create.outside_hours", out.LogFields{
			"startTime": request.StartTime,
		})
		return domain.BookingResult{
			Status: domain.BookingStatusRejected,
			Message: fmt.Sprintf("Appointments must be between %d:00 and %d:00",
				s.cfg.Booking.BusinessStartHour, s.cfg.Booking.BusinessEndHour),
		}
	}

	booked, err := s.fetchBookedIntervals(ctx, request.StartTime)
	if err != nil {
		s.logger.Error("booking.create.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.BookingResult{
			Status:  domain.BookingStatusFailed,
			Message: fmt.Sprintf("Error booking appointment: %s", err.Error()),
		}
	}

	// Запрошенный интервал прогоняем через тот же фильтр конфликтов,
	// что и кандидатные слоты
	if len(filterConflicts([]domain.Interval{requested}, booked)) == 0 {
		s.logger.Info("booking.create.conflict", out.LogFields{
			"startTime": request.StartTime,
		})
		availability := s.conflictAlternatives(ctx, request.StartTime, booked, request.Duration)
		return domain.BookingResult{
			Status:       domain.BookingStatusConflict,
			Message:      "Time slot is already booked",
			Availability: &availability,
		}
	}

	event := domain.CalendarEvent{
		Summary:     request.Name,
		Description: domain.PhoneDescription(request.PhoneNumber),
		Start:       request.StartTime,
		End:         request.StartTime.Add(request.Duration),
	}
	if err := s.calendar.CreateEvent(ctx, event); err != nil {
		s.logger.Error("booking.create.commit_failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.BookingResult{
			Status:  domain.BookingStatusFailed,
			Message: fmt.Sprintf("Error booking appointment: %s", err.Error()),
		}
	}

	s.logger.Info("booking.create.success", out.LogFields{
		"startTime": request.StartTime,
	})
	return domain.BookingResult{
		Status:  domain.BookingStatusSuccess,
		Message: "Appointment booked successfully",
	}
}

func (s *BookingService) CancelAppointment(ctx context.Context, startTime time.Time, phoneNumber string) domain.BookingResult {
	s.logger.Info("booking.cancel.started", out.LogFields{
		"startTime": startTime,
	})

	if phoneNumber == "" || startTime.IsZero() {
		return domain.BookingResult{
			Status:  domain.BookingStatusRejected,
			Message: "Timestamp and phone number are required",
		}
	}

	events, err := s.calendar.ListDayEvents(ctx, startTime)
	if err != nil {
		s.logger.Error("booking.cancel.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.BookingResult{
			Status:  domain.BookingStatusFailed,
			Message: fmt.Sprintf("Error cancelling appointment: %s", err.Error()),
		}
	}

	// Ищем запись по точному времени начала и номеру телефона в описании
	for _, event := range events {
		if !event.Start.Equal(startTime) || !event.MatchesPhone(phoneNumber) {
			continue
		}

		if err := s.calendar.DeleteEvent(ctx, event.ID); err != nil {
			s.logger.Error("booking.cancel.delete_failed", out.LogFields{
				"eventId": event.ID,
				"error":   err.Error(),
			})
			return domain.BookingResult{
				Status:  domain.BookingStatusFailed,
				Message: fmt.Sprintf("Error cancelling appointment: %s", err.Error()),
			}
		}

		s.logger.Info("booking.cancel.success", out.LogFields{
			"eventId": event.ID,
		})
		return domain.BookingResult{
			Status:  domain.BookingStatusSuccess,
			Message: "Appointment cancelled successfully",
		}
	}

	s.logger.Warn("booking.cancel.not_found", out.LogFields{
		"startTime": startTime,
	})
	return domain.BookingResult{
		Status:  domain.BookingStatusNotFound,
		Message: "No matching appointment found",
	}
}

func (s *BookingService) GetCustomerAppointments(ctx context.Context, phoneNumber string) domain.AppointmentsResult {
	s.logger.Info("appointments.lookup.started", out.LogFields{})

	if phoneNumber == "" {
		return domain.AppointmentsResult{
			Success:      false,
			Message:      "Phone number is required",
			Appointments: []domain.Appointment{},
		}
	}

	events, err := s.calendar.ListUpcomingEvents(ctx, s.clock.Now())
	if err != nil {
		s.logger.Error("appointments.lookup.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.AppointmentsResult{
			Success:      false,
			Message:      fmt.Sprintf("Error retrieving appointments: %s", err.Error()),
			Appointments: []domain.Appointment{},
		}
	}

	appointments := make([]domain.Appointment, 0)
	for _, event := range events {
		if !event.MatchesPhone(phoneNumber) {
			continue
		}
		appointments = append(appointments, domain.Appointment{
			Name:  event.Summary,
			Start: event.Start,
			End:   event.End,
		})
	}

	// Хранилище не обязано отдавать события упорядоченными
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].Start.Before(appointments[j].Start)
	})

	s.logger.Debug("appointments.lookup.success", out.LogFields{
		"count": len(appointments),
	})
	return domain.AppointmentsResult{
		Success:      true,
		Message:      "Appointments retrieved successfully",
		Appointments: appointments,
	}
}
