package get_quote

import (
	getQuote "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/get_quote"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	VenueID     string             `json:"venueId"`
	DateFrom    types.Date         `json:"dateFrom"`
	DateTo      types.Date         `json:"dateTo"`
	NightlyRate float64            `json:"nightlyRate"`
	Nights      int                `json:"nights"`
	TotalPrice  float64            `json:"totalPrice"`
	Available   bool               `json:"available"`
	InPast      bool               `json:"inPast"`
	Inverted    bool               `json:"inverted"`
	Conflicts   []ConflictResponse `json:"conflicts"`
}

// ConflictResponse пересекающееся бронирование
type ConflictResponse struct {
	BookingID string     `json:"bookingId"`
	DateFrom  types.Date `json:"dateFrom"`
	DateTo    types.Date `json:"dateTo"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	result := &QuoteResponse{
		VenueID:     resp.VenueID,
		DateFrom:    resp.DateFrom,
		DateTo:      resp.DateTo,
		NightlyRate: resp.NightlyRate,
		Nights:      resp.Pricing.Nights,
		TotalPrice:  resp.Pricing.TotalPrice,
		Available:   resp.Available,
		InPast:      resp.InPast,
		Inverted:    resp.Inverted,
		Conflicts:   make([]ConflictResponse, 0, len(resp.Conflicts)),
	}

	for _, c := range resp.Conflicts {
		result.Conflicts = append(result.Conflicts, ConflictResponse{
			BookingID: c.ID,
			DateFrom:  types.NewDate(c.DateFrom),
			DateTo:    types.NewDate(c.DateTo),
		})
	}

	return result
}
