package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
)

// Фиксированный текст для пустого списка слотов
const noAvailableTimes = "No available times found"

// mergeRunThreshold — минимальная длина непрерывной серии слотов,
// при которой серия схлопывается в один диапазон "from ... to ..."
const mergeRunThreshold = 3

// formatTimeOfDay рендерит время в 12-часовом формате: без минут и
// двоеточия для ровных часов ("9AM"), с минутами иначе ("2:30PM").
// Час без ведущего нуля, суффикс AM/PM заглавными без пробела.
func formatTimeOfDay(t domain.TimeOfDay) string {
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}

	suffix := "AM"
	if t.Hour >= 12 {
		suffix = "PM"
	}

	if t.Minute == 0 {
		return fmt.Sprintf("%d%s", hour, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", hour, t.Minute, suffix)
}

// formatDayLong рендерит дату для читаемых сообщений: "Monday, January 2"
func formatDayLong(day time.Time) string {
	return day.Format("Monday, January 2")
}

// groupContiguous разбивает слоты на максимальные непрерывные серии:
// граница серии там, где начало следующего слота не равно концу предыдущего
func groupContiguous(slots []domain.Interval) [][]domain.Interval {
	if len(slots) == 0 {
		return nil
	}

	sorted := IntervalSlice(slots).quickSort()

	groups := make([][]domain.Interval, 0)
	current := []domain.Interval{sorted[0]}

	for _, slot := range sorted[1:] {
		if current[len(current)-1].Contiguous(slot) {
			current = append(current, slot)
		} else {
			groups = append(groups, current)
			current = []domain.Interval{slot}
		}
	}

	return append(groups, current)
}

// renderSlots собирает читаемое сообщение о свободном времени.
// Серия из mergeRunThreshold и более слотов показывается диапазоном,
// где конец — это начало последнего слота серии: отображаемый конец
// занижает реальную доступность на одну длительность, это сознательное
// упрощение. Короткие серии показываются по одному времени на слот.
func renderSlots(slots []domain.Interval) string {
	if len(slots) == 0 {
		return noAvailableTimes
	}

	tokens := make([]string, 0)
	for _, group := range groupContiguous(slots) {
		if len(group) >= mergeRunThreshold {
			tokens = append(tokens, fmt.Sprintf("from %s to %s",
				formatTimeOfDay(group[0].Start),
				formatTimeOfDay(group[len(group)-1].Start)))
		} else {
			for _, slot := range group {
				tokens = append(tokens, formatTimeOfDay(slot.Start))
			}
		}
	}

	return strings.Join(tokens, ", ")
}

// slotRanges возвращает те же серии в структурном виде HH:MM для ответа API
func slotRanges(slots []domain.Interval) []domain.SlotRange {
	ranges := make([]domain.SlotRange, 0)

	for _, group := range groupContiguous(slots) {
		if len(group) >= mergeRunThreshold {
			ranges = append(ranges, domain.SlotRange{
				Start: group[0].Start.String(),
				End:   group[len(group)-1].Start.String(),
			})
		} else {
			for _, slot := range group {
				ranges = append(ranges, domain.SlotRange{
					Start: slot.Start.String(),
					End:   slot.End.String(),
				})
			}
		}
	}

	return ranges
}

// availabilityMessage оборачивает срендеренные слоты в сообщение с датой
func availabilityMessage(day time.Time, slots []domain.Interval) string {
	if len(slots) == 0 {
		return fmt.Sprintf("No available times found on %s", formatDayLong(day))
	}
	return fmt.Sprintf("Available %s: %s", formatDayLong(day), renderSlots(slots))
}
