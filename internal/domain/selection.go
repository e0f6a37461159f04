package domain

import "time"

// SelectionState состояние выбора дат
type SelectionState string

const (
	SelectionEmpty    SelectionState = "empty"     // Даты не выбраны
	SelectionHasStart SelectionState = "has_start" // Выбран только заезд
	SelectionComplete SelectionState = "complete"  // Выбраны заезд и выезд
)

// Selection выбор дат пользователем (CandidateSelection)
// Empty | HasStart{DateFrom} | Complete{DateFrom, DateTo}
// Инвариант: DateTo, если задан, строго позже DateFrom
type Selection struct {
	State    SelectionState
	DateFrom time.Time
	DateTo   time.Time
}

// EmptySelection пустой выбор
func EmptySelection() Selection {
	return Selection{State: SelectionEmpty}
}

// Next возвращает состояние после клика по дате d
//
// Таблица переходов:
// - Empty            -> HasStart{d}
// - HasStart{s}, d>s -> Complete{s, d}
// - HasStart{s}, d<=s -> HasStart{d} (старый заезд отбрасывается)
// - Complete         -> HasStart{d} (предыдущий интервал отбрасывается)
//
// Проверка прошедших и занятых дат выполняется до вызова Next
func (s Selection) Next(d time.Time) Selection {
	switch s.State {
	case SelectionHasStart:
		if d.After(s.DateFrom) {
			return Selection{State: SelectionComplete, DateFrom: s.DateFrom, DateTo: d}
		}
		return Selection{State: SelectionHasStart, DateFrom: d}
	default:
		// Empty, Complete и неизвестные состояния начинают цикл заново
		return Selection{State: SelectionHasStart, DateFrom: d}
	}
}

func (s Selection) IsEmpty() bool {
	return s.State != SelectionHasStart && s.State != SelectionComplete
}

func (s Selection) IsComplete() bool {
	return s.State == SelectionComplete
}

// Contains проверяет, попадает ли день в выбранный диапазон (включая день выезда)
func (s Selection) Contains(d time.Time) bool {
	switch s.State {
	case SelectionHasStart:
		return d.Equal(s.DateFrom)
	case SelectionComplete:
		return !d.Before(s.DateFrom) && !d.After(s.DateTo)
	default:
		return false
	}
}

// Pricing считает стоимость выбора; для незавершенного выбора возвращает нули
func (s Selection) Pricing(nightlyRate float64) Pricing {
	if !s.IsComplete() {
		return Pricing{}
	}
	return ComputePricing(s.DateFrom, s.DateTo, nightlyRate)
}

// SelectionSession сохраненный выбор дат для конкретной площадки
type SelectionSession struct {
	ID        string
	VenueID   string
	Selection Selection
	UpdatedAt time.Time
	// Version растет при каждом сохранении; Save с устаревшей версией отклоняется
	Version int64
}
