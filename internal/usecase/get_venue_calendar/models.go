package get_venue_calendar

import "github.com/m04kA/SMC-HolidazeGateway/internal/domain"

// Request модель запроса календаря площадки
type Request struct {
	VenueID     string  // ID площадки
	Month       string  // Месяц "YYYY-MM"; пусто - текущий месяц
	SelectionID *string // Сессия выбора для подсветки выбранных дней (опционально)
}

// Response модель ответа с календарем месяца
type Response struct {
	VenueID     string
	VenueName   string
	NightlyRate float64
	MaxGuests   int
	Calendar    domain.CalendarMonth
	Selection   *domain.Selection // nil, если сессия не передана
	Pricing     domain.Pricing
}
