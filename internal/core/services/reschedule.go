package services

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/out"
)

// Суффикс имени события, помечающий запись как перенесенную
const rescheduledSuffix = " (Rescheduled)"

// RescheduleAppointment — сага из двух внешних мутаций без общей транзакции:
// бронирование нового времени, затем отмена старой записи. Если отмена
// старой записи не удалась, компенсирующим шагом снимается только что
// созданная запись. Если не удалась и компенсация, в календаре остаются
// две живых записи — это видимая, принятая несогласованность, повторных
// попыток нет.
func (s *BookingService) RescheduleAppointment(ctx context.Context, name, phoneNumber string, oldStartTime, newStartTime time.Time) domain.BookingResult {
	s.logger.Info("booking.reschedule.started", out.LogFields{
		"oldStartTime": oldStartTime,
		"newStartTime": newStartTime,
	})

	if name == "" || phoneNumber == "" || oldStartTime.IsZero() || newStartTime.IsZero() {
		return domain.BookingResult{
			Status:  domain.BookingStatusRejected,
			Message: "Name, phone number, old timestamp, and new timestamp are required",
		}
	}

	booking := s.BookAppointment(ctx, domain.AppointmentRequest{
		Name:        name + rescheduledSuffix,
		PhoneNumber: phoneNumber,
		StartTime:   newStartTime,
	})
	if !booking.Success() {
		// Старая запись не тронута, результат отдаем как есть
		// вместе с альтернативным временем, если оно было собрано
		return booking
	}

	cancel := s.CancelAppointment(ctx, oldStartTime, phoneNumber)
	if !cancel.Success() {
		// Компенсация: снимаем только что созданную запись
		compensation := s.CancelAppointment(ctx, newStartTime, phoneNumber)
		if !compensation.Success() {
			s.logger.Error("booking.reschedule.compensation_failed", out.LogFields{
				"newStartTime": newStartTime,
				"message":      compensation.Message,
			})
		}

		return domain.BookingResult{
			Status:  domain.BookingStatusFailed,
			Message: fmt.Sprintf("Failed to cancel old appointment: %s", cancel.Message),
		}
	}

	s.logger.Info("booking.reschedule.success", out.LogFields{
		"oldStartTime": oldStartTime,
		"newStartTime": newStartTime,
	})
	return domain.BookingResult{
		Status:  domain.BookingStatusSuccess,
		Message: "Appointment rescheduled successfully",
	}
}
