package get_quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/availability"
	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
)

// UseCase use case расчета стоимости интервала без сохранения выбора
type UseCase struct {
	venueClient  VenueClient
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(venueClient VenueClient, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		venueClient:  venueClient,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute считает ночи и стоимость для [DateFrom, DateTo)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: venue=%s, dateFrom=%s, dateTo=%s", req.VenueID, req.DateFrom, req.DateTo)

	if req.VenueID == "" {
		return nil, fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return nil, fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now().In(uc.location)

	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrVenueNotFound) {
			uc.logger.Warn("GetQuote: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		if errors.Is(err, holidazeClient.ErrUnavailable) {
			uc.logger.Error("GetQuote: Holidaze API unavailable for venue id=%s: %v", req.VenueID, err)
			return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
		}
		uc.logger.Error("GetQuote: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	from := req.DateFrom.In(uc.location)
	to := req.DateTo.In(uc.location)

	resp := &Response{
		VenueID:     venue.ID,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		NightlyRate: venue.Price,
		Pricing:     domain.ComputePricing(from, to, venue.Price),
		InPast:      availability.IsDateInPast(from, now),
		Inverted:    !from.Before(to),
		Conflicts:   []domain.ReservedInterval{},
	}

	if !resp.Inverted {
		resp.Conflicts = availability.ConflictingIntervals(from, to, venue.Bookings)
	}
	resp.Available = !resp.InPast && !resp.Inverted && len(resp.Conflicts) == 0

	uc.logger.Info("GetQuote: venue=%s, nights=%d, total=%.2f, available=%t",
		venue.ID, resp.Pricing.Nights, resp.Pricing.TotalPrice, resp.Available)

	return resp, nil
}
