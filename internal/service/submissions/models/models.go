package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid submission status")
)

// ListRequest запрос истории заявок пользователя
type ListRequest struct {
	Customer string  `json:"customer"`
	VenueID  *string `json:"venueId,omitempty"`
	Status   *string `json:"status,omitempty"`
	Limit    uint64  `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.SubmissionsFilter, error) {
	filter := domain.SubmissionsFilter{
		Customer: r.Customer,
		VenueID:  r.VenueID,
		Limit:    r.Limit,
	}

	if r.Status != nil {
		status, ok := domain.ParseSubmissionStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// SubmissionResponse запись журнала заявок
type SubmissionResponse struct {
	ID              int64      `json:"id"`
	VenueID         string     `json:"venueId"`
	SelectionID     *string    `json:"selectionId,omitempty"`
	DateFrom        types.Date `json:"dateFrom"`
	DateTo          types.Date `json:"dateTo"`
	Guests          int        `json:"guests"`
	Nights          int        `json:"nights"`
	TotalPrice      float64    `json:"totalPrice"`
	Status          string     `json:"status"`
	RemoteBookingID *string    `json:"remoteBookingId,omitempty"`
	Message         *string    `json:"message,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// SubmissionListResponse ответ со списком заявок
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
}

// FromDomainSubmission конвертирует domain модель в DTO
func FromDomainSubmission(s *domain.Submission) *SubmissionResponse {
	if s == nil {
		return nil
	}

	return &SubmissionResponse{
		ID:              s.ID,
		VenueID:         s.VenueID,
		SelectionID:     s.SelectionID,
		DateFrom:        s.DateFrom,
		DateTo:          s.DateTo,
		Guests:          s.Guests,
		Nights:          s.Nights,
		TotalPrice:      s.TotalPrice,
		Status:          string(s.Status),
		RemoteBookingID: s.RemoteBookingID,
		Message:         s.Message,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainSubmissionList конвертирует список domain моделей в DTO
func FromDomainSubmissionList(submissions []*domain.Submission) *SubmissionListResponse {
	resp := &SubmissionListResponse{
		Submissions: make([]SubmissionResponse, 0, len(submissions)),
	}

	for _, s := range submissions {
		if item := FromDomainSubmission(s); item != nil {
			resp.Submissions = append(resp.Submissions, *item)
		}
	}

	return resp
}
