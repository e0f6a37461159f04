package get_venue_calendar

import (
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	getVenueCalendar "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/get_venue_calendar"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	VenueID       string             `json:"venueId"`
	VenueName     string             `json:"venueName"`
	NightlyRate   float64            `json:"nightlyRate"`
	MaxGuests     int                `json:"maxGuests"`
	Month         string             `json:"month"` // "2024-03"
	AvailableDays int                `json:"availableDays"`
	OccupancyRate float64            `json:"occupancyRate"`
	Days          []DayResponse      `json:"days"`
	Selection     *SelectionResponse `json:"selection,omitempty"`
}

// DayResponse ячейка календаря
type DayResponse struct {
	Date       types.Date `json:"date"`
	State      string     `json:"state"`
	Selectable bool       `json:"selectable"`
}

// SelectionResponse выбор дат, подсвеченный в календаре
type SelectionResponse struct {
	State      string     `json:"state"`
	DateFrom   types.Date `json:"dateFrom"`
	DateTo     types.Date `json:"dateTo"`
	Nights     int        `json:"nights"`
	TotalPrice float64    `json:"totalPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getVenueCalendar.Response) *CalendarResponse {
	month := time.Date(resp.Calendar.Year, time.Month(resp.Calendar.Month), 1, 0, 0, 0, 0, time.UTC).
		Format(domain.MonthFormat)

	result := &CalendarResponse{
		VenueID:       resp.VenueID,
		VenueName:     resp.VenueName,
		NightlyRate:   resp.NightlyRate,
		MaxGuests:     resp.MaxGuests,
		Month:         month,
		AvailableDays: resp.Calendar.AvailableDays(),
		OccupancyRate: resp.Calendar.OccupancyRate(),
		Days:          make([]DayResponse, 0, len(resp.Calendar.Days)),
	}

	for i := range resp.Calendar.Days {
		day := &resp.Calendar.Days[i]
		result.Days = append(result.Days, DayResponse{
			Date:       day.Date,
			State:      string(day.State),
			Selectable: day.IsSelectable(),
		})
	}

	if resp.Selection != nil {
		result.Selection = fromSelection(*resp.Selection, resp.Pricing)
	}

	return result
}

func fromSelection(s domain.Selection, pricing domain.Pricing) *SelectionResponse {
	resp := &SelectionResponse{
		State:      string(s.State),
		Nights:     pricing.Nights,
		TotalPrice: pricing.TotalPrice,
	}
	if !s.IsEmpty() {
		resp.DateFrom = types.NewDate(s.DateFrom)
	}
	if s.IsComplete() {
		resp.DateTo = types.NewDate(s.DateTo)
	}
	return resp
}
