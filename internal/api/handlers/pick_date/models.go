package pick_date

import (
	pickDate "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/pick_date"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// PickDateRequest HTTP request model
type PickDateRequest struct {
	Date string `json:"date" validate:"required"` // "2024-03-15"
}

// PickDateResponse HTTP response model
type PickDateResponse struct {
	SelectionID string     `json:"selectionId"`
	VenueID     string     `json:"venueId"`
	Accepted    bool       `json:"accepted"`
	Reason      string     `json:"reason,omitempty"`
	State       string     `json:"state"`
	DateFrom    types.Date `json:"dateFrom"`
	DateTo      types.Date `json:"dateTo"`
	Nights      int        `json:"nights"`
	TotalPrice  float64    `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PickDateRequest) ToUseCaseRequest(selectionID string) (*pickDate.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &pickDate.Request{
		SelectionID: selectionID,
		Date:        date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *pickDate.Response) *PickDateResponse {
	result := &PickDateResponse{
		SelectionID: resp.SelectionID,
		VenueID:     resp.VenueID,
		Accepted:    resp.Accepted,
		Reason:      string(resp.Reason),
		State:       string(resp.Selection.State),
		Nights:      resp.Pricing.Nights,
		TotalPrice:  resp.Pricing.TotalPrice,
	}
	if !resp.Selection.IsEmpty() {
		result.DateFrom = types.NewDate(resp.Selection.DateFrom)
	}
	if resp.Selection.IsComplete() {
		result.DateTo = types.NewDate(resp.Selection.DateTo)
	}
	return result
}
