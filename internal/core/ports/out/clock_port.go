package out

import "time"

// ClockPort — источник текущего времени. Инжектируется, чтобы фильтрация
// прошедших слотов и прошедших дат была детерминированно тестируемой.
type ClockPort interface {
	Now() time.Time
}
