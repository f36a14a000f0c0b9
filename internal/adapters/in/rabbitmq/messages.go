package rabbitmq

import (
	"github.com/suchimauz/calendar-booking-service/internal/core/json_types"
)

// Operation — имя операции движка в сообщении очереди.
// Набор операций совпадает с HTTP-контроллером: очередь — второй
// входной транспорт для тех же вызовов.
type Operation string

const (
	OperationBookAppointment       Operation = "book_appointment"
	OperationCancelAppointment     Operation = "cancel_appointment"
	OperationRescheduleAppointment Operation = "reschedule_appointment"
	OperationGetAvailability       Operation = "get_availability"
	OperationGetAppointments       Operation = "get_appointments"
)

// OperationMessage — полезная нагрузка сообщения: операция плюс ее
// параметры. Неиспользуемые операцией поля остаются пустыми.
type OperationMessage struct {
	Operation    Operation           `json:"operation"`
	Name         string              `json:"name,omitempty"`
	PhoneNumber  string              `json:"phoneNumber,omitempty"`
	Timestamp    json_types.DateTime `json:"timestamp,omitempty"`
	OldTimestamp json_types.DateTime `json:"oldTimestamp,omitempty"`
	NewTimestamp json_types.DateTime `json:"newTimestamp,omitempty"`
	Date         json_types.Date     `json:"date,omitempty"`
	Duration     int                 `json:"duration,omitempty"`
}
