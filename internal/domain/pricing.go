package domain

import (
	"math"
	"time"
)

// Pricing количество ночей и итоговая стоимость (PricingResult)
type Pricing struct {
	Nights     int
	TotalPrice float64
}

// ComputePricing считает ночи и стоимость для интервала [dateFrom, dateTo)
// Нулевое time.Time означает незаданную дату, тогда результат нулевой.
// nights = ceil(|dateTo - dateFrom| в сутках), totalPrice = nights * nightlyRate
func ComputePricing(dateFrom, dateTo time.Time, nightlyRate float64) Pricing {
	if dateFrom.IsZero() || dateTo.IsZero() {
		return Pricing{}
	}

	// Сравниваем показания настенных часов, чтобы переход на летнее/зимнее время
	// не давал лишнюю ночь (сутки длиной 25 часов)
	diff := wallClock(dateTo).Sub(wallClock(dateFrom))
	if diff < 0 {
		diff = -diff
	}

	nights := int(math.Ceil(diff.Hours() / 24))

	if nightlyRate < 0 {
		nightlyRate = 0
	}

	return Pricing{
		Nights:     nights,
		TotalPrice: float64(nights) * nightlyRate,
	}
}

// wallClock переносит локальные показания времени в UTC без сдвига
func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
}
