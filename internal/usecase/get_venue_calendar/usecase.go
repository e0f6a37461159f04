package get_venue_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/availability"
	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	selectionStore "github.com/m04kA/SMC-HolidazeGateway/internal/infra/storage/selection"
	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
)

// UseCase use case для получения календаря площадки на месяц
type UseCase struct {
	venueClient  VenueClient
	store        SelectionStore
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueClient VenueClient,
	store SelectionStore,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		venueClient:  venueClient,
		store:        store,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит календарь месяца с категорией каждого дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetVenueCalendar: venue=%s, month=%s", req.VenueID, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetVenueCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в поясе календаря
	now := uc.timeProvider.Now().In(uc.location)

	year, month, err := parseMonth(req.Month, now)
	if err != nil {
		uc.logger.Warn("GetVenueCalendar: %v", err)
		return nil, err
	}

	// 3. Получаем площадку вместе с бронированиями
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrVenueNotFound) {
			uc.logger.Warn("GetVenueCalendar: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		if errors.Is(err, holidazeClient.ErrUnavailable) {
			uc.logger.Error("GetVenueCalendar: Holidaze API unavailable for venue id=%s: %v", req.VenueID, err)
			return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
		}
		uc.logger.Error("GetVenueCalendar: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 4. Получаем выбор пользователя, если передан
	selection := domain.EmptySelection()
	var selectionPtr *domain.Selection

	if req.SelectionID != nil {
		session, err := uc.store.Get(ctx, *req.SelectionID)
		if err != nil {
			if errors.Is(err, selectionStore.ErrSelectionNotFound) {
				uc.logger.Warn("GetVenueCalendar: selection id=%s not found", *req.SelectionID)
				return nil, ErrSelectionNotFound
			}
			uc.logger.Error("GetVenueCalendar: failed to get selection id=%s: %v", *req.SelectionID, err)
			return nil, fmt.Errorf("%w: failed to get selection: %v", ErrInternal, err)
		}

		if session.VenueID != venue.ID {
			uc.logger.Warn("GetVenueCalendar: selection id=%s belongs to venue=%s, not %s",
				session.ID, session.VenueID, venue.ID)
			return nil, ErrSelectionMismatch
		}

		selection = session.Selection
		selectionPtr = &selection
	}

	// 5. Строим календарь
	calendar := availability.BuildMonth(year, month, uc.location, now, venue.Bookings, selection)

	uc.logger.Info("GetVenueCalendar: venue=%s, month=%04d-%02d, available=%d/%d",
		venue.ID, year, int(month), calendar.AvailableDays(), len(calendar.Days))

	return &Response{
		VenueID:     venue.ID,
		VenueName:   venue.Name,
		NightlyRate: venue.Price,
		MaxGuests:   venue.MaxGuests,
		Calendar:    calendar,
		Selection:   selectionPtr,
		Pricing:     selection.Pricing(venue.Price),
	}, nil
}
