package pick_date

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	selectionStore "github.com/m04kA/SMC-HolidazeGateway/internal/infra/storage/selection"
	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
)

// maxSaveAttempts сколько раз перечитывается сессия, если ее изменили параллельно
const maxSaveAttempts = 3

const (
	pickAccepted        = "accepted"
	pickIgnoredPast     = "ignored_past"
	pickIgnoredReserved = "ignored_unavailable"
)

// UseCase use case выбора даты в календаре (двухкликовый протокол заезд/выезд)
type UseCase struct {
	store        SelectionStore
	venueClient  VenueClient
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// loc - часовой пояс календаря площадок
func NewUseCase(
	store SelectionStore,
	venueClient VenueClient,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		store:        store,
		venueClient:  venueClient,
		metrics:      metrics,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute применяет клик по дате к сохраненному выбору
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PickDate: selection=%s, date=%s", req.SelectionID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PickDate: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в поясе календаря
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Получаем сессию выбора
	session, err := uc.getSession(ctx, req.SelectionID)
	if err != nil {
		return nil, err
	}

	// 4. Получаем площадку с актуальными бронированиями
	venue, err := uc.venueClient.GetVenue(ctx, session.VenueID)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrVenueNotFound) {
			uc.logger.Warn("PickDate: venue id=%s not found", session.VenueID)
			return nil, ErrVenueNotFound
		}
		if errors.Is(err, holidazeClient.ErrUnavailable) {
			uc.logger.Error("PickDate: Holidaze API unavailable for venue id=%s: %v", session.VenueID, err)
			return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
		}
		uc.logger.Error("PickDate: failed to get venue id=%s: %v", session.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	day := req.Date.In(uc.location)

	// 5. Прошедшие и занятые дни не меняют выбор
	if reason := guardPick(day, now, venue.Bookings); reason != IgnoreNone {
		uc.logger.Info("PickDate: date=%s ignored for selection=%s: %s", req.Date, req.SelectionID, reason)
		if reason == IgnorePast {
			uc.metrics.IncSelectionPick(pickIgnoredPast)
		} else {
			uc.metrics.IncSelectionPick(pickIgnoredReserved)
		}
		return &Response{
			SelectionID: session.ID,
			VenueID:     session.VenueID,
			Accepted:    false,
			Reason:      reason,
			Selection:   session.Selection,
			Pricing:     session.Selection.Pricing(venue.Price),
		}, nil
	}

	// 6. Переход состояния и сохранение; при параллельном изменении клик применяется к свежей версии
	for attempt := 1; ; attempt++ {
		session.Selection = session.Selection.Next(day)
		session.UpdatedAt = now

		err := uc.store.Save(ctx, session)
		if err == nil {
			break
		}

		switch {
		case errors.Is(err, selectionStore.ErrSelectionConflict) && attempt < maxSaveAttempts:
			uc.logger.Warn("PickDate: selection id=%s changed concurrently, retrying (attempt %d)", req.SelectionID, attempt)
			if session, err = uc.getSession(ctx, req.SelectionID); err != nil {
				return nil, err
			}
			continue
		case errors.Is(err, selectionStore.ErrSelectionConflict):
			uc.logger.Warn("PickDate: selection id=%s keeps changing, giving up after %d attempts", req.SelectionID, attempt)
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		case errors.Is(err, selectionStore.ErrSelectionNotFound):
			uc.logger.Warn("PickDate: selection id=%s expired before save", req.SelectionID)
			return nil, ErrSelectionNotFound
		default:
			uc.logger.Error("PickDate: failed to save selection id=%s: %v", req.SelectionID, err)
			return nil, fmt.Errorf("%w: failed to save selection: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncSelectionPick(pickAccepted)
	uc.logger.Info("PickDate: selection=%s is now %s", session.ID, session.Selection.State)

	return &Response{
		SelectionID: session.ID,
		VenueID:     session.VenueID,
		Accepted:    true,
		Selection:   session.Selection,
		Pricing:     session.Selection.Pricing(venue.Price),
	}, nil
}

func (uc *UseCase) getSession(ctx context.Context, selectionID string) (*domain.SelectionSession, error) {
	session, err := uc.store.Get(ctx, selectionID)
	if err != nil {
		if errors.Is(err, selectionStore.ErrSelectionNotFound) {
			uc.logger.Warn("PickDate: selection id=%s not found", selectionID)
			return nil, ErrSelectionNotFound
		}
		uc.logger.Error("PickDate: failed to get selection id=%s: %v", selectionID, err)
		return nil, fmt.Errorf("%w: failed to get selection: %v", ErrInternal, err)
	}
	return session, nil
}
