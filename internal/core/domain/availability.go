package domain

import "time"

// SlotRange — отображаемый диапазон свободного времени в формате HH:MM.
// Несколько подряд идущих слотов схлопываются в один диапазон при рендеринге.
type SlotRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityResult — результат запроса свободного времени.
// DayOffset показывает, на сколько дней вперед от запрошенного дня
// пришлось сдвинуться, чтобы найти свободные слоты.
type AvailabilityResult struct {
	Found     bool        `json:"found"`
	Date      time.Time   `json:"date"`
	Message   string      `json:"message"`
	Slots     []SlotRange `json:"slots,omitempty"`
	DayOffset int         `json:"dayOffset"`
}
