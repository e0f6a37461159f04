package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	createBooking "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// CreateBookingRequest HTTP request model
// Либо selectionId (даты из сохраненного выбора), либо venueId с датами
type CreateBookingRequest struct {
	VenueID     string  `json:"venueId" validate:"required_without=SelectionID"`
	SelectionID *string `json:"selectionId,omitempty" validate:"omitempty,uuid"`
	DateFrom    string  `json:"dateFrom,omitempty"` // "2024-03-15"
	DateTo      string  `json:"dateTo,omitempty"`   // "2024-03-18"
	Guests      int     `json:"guests"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	SubmissionID int64      `json:"submissionId,omitempty"`
	BookingID    string     `json:"bookingId"`
	VenueID      string     `json:"venueId"`
	DateFrom     types.Date `json:"dateFrom"`
	DateTo       types.Date `json:"dateTo"`
	Guests       int        `json:"guests"`
	Nights       int        `json:"nights"`
	TotalPrice   float64    `json:"totalPrice"`
	CreatedAt    string     `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые даты остаются нулевыми: их отсутствие проверяет use case
func (r *CreateBookingRequest) ToUseCaseRequest(customer domain.Customer) (*createBooking.Request, error) {
	dateFrom, err := parseOptionalDate(r.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseOptionalDate(r.DateTo)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Customer:    customer,
		VenueID:     r.VenueID,
		SelectionID: r.SelectionID,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		Guests:      r.Guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		SubmissionID: resp.SubmissionID,
		BookingID:    resp.BookingID,
		VenueID:      resp.VenueID,
		DateFrom:     resp.DateFrom,
		DateTo:       resp.DateTo,
		Guests:       resp.Guests,
		Nights:       resp.Nights,
		TotalPrice:   resp.TotalPrice,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}

func parseOptionalDate(s string) (types.Date, error) {
	if s == "" {
		return types.Date{}, nil
	}
	return types.ParseDate(s)
}
