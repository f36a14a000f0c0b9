package domain

import (
	"time"
)

// DefaultAppointmentDuration — длительность записи по умолчанию
const DefaultAppointmentDuration = 30 * time.Minute

// AppointmentRequest — запрос на бронирование. Номер телефона служит
// идентификатором клиента при поиске и отмене, формат номера не проверяется.
type AppointmentRequest struct {
	Name        string
	PhoneNumber string
	StartTime   time.Time
	Duration    time.Duration
}

// WithDefaults подставляет длительность по умолчанию, если она не задана
func (r AppointmentRequest) WithDefaults() AppointmentRequest {
	if r.Duration <= 0 {
		r.Duration = DefaultAppointmentDuration
	}
	return r
}

// Interval возвращает запрошенный промежуток как интервал внутри дня
func (r AppointmentRequest) Interval() Interval {
	return Interval{
		Start: TimeOfDayFromTime(r.StartTime),
		End:   TimeOfDayFromTime(r.StartTime).Add(int(r.Duration.Minutes())),
	}
}

// Appointment — существующая запись клиента, найденная в календаре
type Appointment struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
