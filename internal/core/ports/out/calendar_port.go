package out

import (
	"context"
	"time"

	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
)

// CalendarPort — способность внешнего календарного хранилища.
// Движок не держит прямой ссылки на конкретного клиента: адаптер
// подставляется при сборке, в тестах заменяется in-memory фейком.
//
// События без времени (на весь день) адаптер отфильтровывает сам,
// до интервальной логики ядра они не доходят.
type CalendarPort interface {
	// Список событий за один календарный день
	ListDayEvents(ctx context.Context, day time.Time) ([]domain.CalendarEvent, error)

	// Список событий начиная с указанного момента (поиск записей клиента)
	ListUpcomingEvents(ctx context.Context, from time.Time) ([]domain.CalendarEvent, error)

	// Создание события, ID назначается хранилищем
	CreateEvent(ctx context.Context, event domain.CalendarEvent) error

	// Удаление события по непрозрачному ID
	DeleteEvent(ctx context.Context, eventID string) error
}
