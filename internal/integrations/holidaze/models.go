package holidaze

// envelope общая обертка ответов Holidaze API: {"data": ..., "meta": ...}
type envelope[T any] struct {
	Data T `json:"data"`
}

// Venue модель площадки из Holidaze API (GET /holidaze/venues/{id}?_bookings=true)
type Venue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	MaxGuests int       `json:"maxGuests"`
	Bookings  []Booking `json:"bookings"`
}

// Booking модель бронирования из Holidaze API
// Даты приходят строками ISO 8601 (например, "2024-03-10T00:00:00.000Z")
type Booking struct {
	ID       string `json:"id"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
	Created  string `json:"created,omitempty"`
	Updated  string `json:"updated,omitempty"`
}

// CreateBookingRequest тело POST /holidaze/bookings
type CreateBookingRequest struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
	VenueID  string `json:"venueId"`
}

// Profile модель профиля из Holidaze API (GET /holidaze/profiles/{name})
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse модель ошибки от Holidaze API
type ErrorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
}
