package domain

import "time"

// ReservedInterval существующее бронирование площадки, полуинтервал [DateFrom, DateTo)
// День выезда (DateTo) свободен для нового заезда
type ReservedInterval struct {
	ID       string
	DateFrom time.Time
	DateTo   time.Time
	Guests   int
}

// Contains проверяет, что день d занят этим бронированием: DateFrom <= d < DateTo
func (r ReservedInterval) Contains(d time.Time) bool {
	return !d.Before(r.DateFrom) && d.Before(r.DateTo)
}

// Overlaps проверяет пересечение с полуинтервалом [from, to)
// Граничащие интервалы (to == DateFrom или from == DateTo) не пересекаются
func (r ReservedInterval) Overlaps(from, to time.Time) bool {
	return from.Before(r.DateTo) && to.After(r.DateFrom)
}

// Venue площадка из удаленного API (только чтение)
type Venue struct {
	ID        string
	Name      string
	Price     float64 // Цена за ночь
	MaxGuests int
	Bookings  []ReservedInterval
}

// AcceptsGuests проверяет, что количество гостей в допустимых пределах
func (v *Venue) AcceptsGuests(guests int) bool {
	return guests >= MinGuests && guests <= v.MaxGuests
}

// StartOfDay обрезает время до полуночи в часовом поясе самого t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
