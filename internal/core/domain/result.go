package domain

// BookingStatus — терминальный статус операции бронирования
type BookingStatus string

const (
	// Запись создана
	BookingStatusSuccess BookingStatus = "success"
	// Запрос отклонен до обращения к календарю (валидация, рабочие часы)
	BookingStatusRejected BookingStatus = "rejected"
	// Запрошенное время пересекается с существующей записью
	BookingStatusConflict BookingStatus = "conflict"
	// Подходящая запись не найдена (отмена, перенос)
	BookingStatusNotFound BookingStatus = "not_found"
	// Ошибка внешнего календаря, текст ошибки передается как есть
	BookingStatusFailed BookingStatus = "failed"
)

// BookingResult — результат операций бронирования, отмены и переноса.
// Конфликт — не ошибка, а нормальный негативный результат: к нему
// прикладывается подборка альтернативного свободного времени.
type BookingResult struct {
	Status       BookingStatus       `json:"status"`
	Message      string              `json:"message"`
	Availability *AvailabilityResult `json:"availability,omitempty"`
}

func (r BookingResult) Success() bool {
	return r.Status == BookingStatusSuccess
}

// AppointmentsResult — результат поиска записей клиента по номеру телефона
type AppointmentsResult struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Appointments []Appointment `json:"appointments"`
}
