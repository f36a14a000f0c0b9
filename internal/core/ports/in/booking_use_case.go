package in

import (
	"context"
	"time"

	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
)

// BookingUseCase — операции движка бронирования. Все негативные исходы
// (валидация, конфликт, ошибка календаря) возвращаются как типизированный
// результат с success=false, а не как ошибка: транспортный слой лишь
// отображает результат в код ответа.
type BookingUseCase interface {
	// Бронирование записи; при конфликте результат содержит
	// подборку альтернативного свободного времени
	BookAppointment(ctx context.Context, request domain.AppointmentRequest) domain.BookingResult

	// Отмена записи по точному времени начала и номеру телефона
	CancelAppointment(ctx context.Context, startTime time.Time, phoneNumber string) domain.BookingResult

	// Перенос записи: бронирование нового времени, затем отмена старого,
	// с компенсирующей отменой нового при частичном сбое
	RescheduleAppointment(ctx context.Context, name, phoneNumber string, oldStartTime, newStartTime time.Time) domain.BookingResult

	// Свободное время на конкретную дату, либо поиск ближайшего
	// свободного дня начиная с завтрашнего
	GetAvailability(ctx context.Context, date *time.Time, duration time.Duration) domain.AvailabilityResult

	// Свободное время на день, в который попадает указанный момент
	GetNextAvailability(ctx context.Context, timestamp time.Time, duration time.Duration) domain.AvailabilityResult

	// Все предстоящие записи клиента по номеру телефона
	GetCustomerAppointments(ctx context.Context, phoneNumber string) domain.AppointmentsResult
}
