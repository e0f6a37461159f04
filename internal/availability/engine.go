// Package availability определяет, какие дни площадки можно выбрать,
// и проверяет предлагаемые интервалы на пересечение с существующими бронированиями.
// Все функции чистые: никаких побочных эффектов, "сейчас" передается явно.
package availability

import (
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// IsDateUnavailable проверяет, что день d занят хотя бы одним бронированием:
// существует r, для которого r.DateFrom <= d < r.DateTo
func IsDateUnavailable(d time.Time, reserved []domain.ReservedInterval) bool {
	for _, r := range reserved {
		if r.Contains(d) {
			return true
		}
	}
	return false
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
// Время обоих операндов обнуляется до полуночи перед сравнением
func IsDateInPast(d, now time.Time) bool {
	return domain.StartOfDay(d).Before(domain.StartOfDay(now))
}

// HasConflict проверяет пересечение [from, to) с любым бронированием
// Интервалы пересекаются, если from < reservedTo И to > reservedFrom.
// Граничащие интервалы (выезд в день заезда) конфликтом не считаются.
//
// Примеры для бронирования [10, 15):
// - [15, 18) -> НЕТ конфликта (граничат)
// - [05, 10) -> НЕТ конфликта (граничат)
// - [05, 20) -> ЕСТЬ конфликт
func HasConflict(from, to time.Time, reserved []domain.ReservedInterval) bool {
	for _, r := range reserved {
		if r.Overlaps(from, to) {
			return true
		}
	}
	return false
}

// ConflictingIntervals возвращает бронирования, пересекающиеся с [from, to)
func ConflictingIntervals(from, to time.Time, reserved []domain.ReservedInterval) []domain.ReservedInterval {
	result := make([]domain.ReservedInterval, 0)
	for _, r := range reserved {
		if r.Overlaps(from, to) {
			result = append(result, r)
		}
	}
	return result
}

// IsSelectable проверяет, что по дню можно кликнуть в календаре
func IsSelectable(d, now time.Time, reserved []domain.ReservedInterval) bool {
	return !IsDateInPast(d, now) && !IsDateUnavailable(d, reserved)
}
