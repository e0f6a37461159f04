package availability

import (
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// Classify определяет категорию дня для отрисовки
// Приоритет: past > unavailable > selected > normal
func Classify(d, now time.Time, reserved []domain.ReservedInterval, selection domain.Selection) domain.DayState {
	switch {
	case IsDateInPast(d, now):
		return domain.DayPast
	case IsDateUnavailable(d, reserved):
		return domain.DayUnavailable
	case selection.Contains(d):
		return domain.DaySelected
	default:
		return domain.DayNormal
	}
}

// BuildMonth строит все дни месяца с их категориями
// Дни создаются как полночь в часовом поясе loc
func BuildMonth(
	year int,
	month time.Month,
	loc *time.Location,
	now time.Time,
	reserved []domain.ReservedInterval,
	selection domain.Selection,
) domain.CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := make([]domain.CalendarDay, 0, 31)

	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, domain.CalendarDay{
			Date:  types.NewDate(d),
			State: Classify(d, now, reserved, selection),
		})
	}

	return domain.CalendarMonth{
		Year:  year,
		Month: int(month),
		Days:  days,
	}
}
