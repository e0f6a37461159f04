package models

import (
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// SelectionResponse состояние выбора дат вместе с расчетом стоимости
type SelectionResponse struct {
	ID         string     `json:"id"`
	VenueID    string     `json:"venueId"`
	State      string     `json:"state"`
	DateFrom   types.Date `json:"dateFrom"`
	DateTo     types.Date `json:"dateTo"`
	Nights     int        `json:"nights"`
	TotalPrice float64    `json:"totalPrice"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// FromDomainSession конвертирует сессию в DTO
// nightlyRate - цена площадки за ночь для расчета стоимости
func FromDomainSession(s *domain.SelectionSession, nightlyRate float64) *SelectionResponse {
	if s == nil {
		return nil
	}

	pricing := s.Selection.Pricing(nightlyRate)

	resp := &SelectionResponse{
		ID:         s.ID,
		VenueID:    s.VenueID,
		State:      string(s.Selection.State),
		Nights:     pricing.Nights,
		TotalPrice: pricing.TotalPrice,
		UpdatedAt:  s.UpdatedAt,
	}
	if !s.Selection.IsEmpty() {
		resp.DateFrom = types.NewDate(s.Selection.DateFrom)
	}
	if s.Selection.IsComplete() {
		resp.DateTo = types.NewDate(s.Selection.DateTo)
	}

	return resp
}
