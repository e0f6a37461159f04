package domain

import "github.com/m04kA/SMC-HolidazeGateway/pkg/types"

// DayState категория дня в календаре
type DayState string

const (
	DayPast        DayState = "past"
	DayUnavailable DayState = "unavailable"
	DaySelected    DayState = "selected"
	DayNormal      DayState = "normal"
)

// CalendarDay ячейка календаря
type CalendarDay struct {
	Date  types.Date
	State DayState
}

// IsSelectable возвращает true, если по дню можно кликнуть (не прошедший и не занятый)
func (d *CalendarDay) IsSelectable() bool {
	return d.State != DayPast && d.State != DayUnavailable
}

// IsBlocked возвращает true, если день занят существующим бронированием
func (d *CalendarDay) IsBlocked() bool {
	return d.State == DayUnavailable
}

// CalendarMonth месяц календаря площадки
type CalendarMonth struct {
	Year  int
	Month int
	Days  []CalendarDay
}

// AvailableDays количество доступных для выбора дней
func (m *CalendarMonth) AvailableDays() int {
	count := 0
	for i := range m.Days {
		if m.Days[i].IsSelectable() {
			count++
		}
	}
	return count
}

// OccupancyRate доля занятых дней месяца среди непрошедших, в процентах (0-100)
func (m *CalendarMonth) OccupancyRate() float64 {
	open, blocked := 0, 0
	for i := range m.Days {
		if m.Days[i].State == DayPast {
			continue
		}
		open++
		if m.Days[i].IsBlocked() {
			blocked++
		}
	}
	if open == 0 {
		return 0
	}
	return float64(blocked) / float64(open) * 100
}
