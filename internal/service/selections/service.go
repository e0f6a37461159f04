package selections

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	selectionStore "github.com/m04kA/SMC-HolidazeGateway/internal/infra/storage/selection"
	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/selections/models"
)

// maxSaveAttempts сколько раз сброс повторяется при параллельном изменении сессии
const maxSaveAttempts = 3

// Service сервис жизненного цикла сессий выбора дат
type Service struct {
	store        SelectionStore
	venueClient  VenueClient
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(store SelectionStore, venueClient VenueClient, logger Logger) *Service {
	return &Service{
		store:        store,
		venueClient:  venueClient,
		idGenerator:  UUIDGenerator{},
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// Start создает пустую сессию выбора для площадки
func (s *Service) Start(ctx context.Context, venueID string) (*models.SelectionResponse, error) {
	s.logger.Info("StartSelection: venue=%s", venueID)

	if venueID == "" {
		return nil, fmt.Errorf("%w: venue id is required", ErrInvalidInput)
	}

	venue, err := s.getVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	session := &domain.SelectionSession{
		ID:        s.idGenerator.NewID(),
		VenueID:   venue.ID,
		Selection: domain.EmptySelection(),
		UpdatedAt: s.timeProvider.Now(),
	}

	if err := s.store.Create(ctx, session); err != nil {
		s.logger.Error("StartSelection: failed to store selection for venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: Start - store error: %v", ErrInternal, err)
	}

	s.logger.Info("StartSelection: created selection id=%s for venue=%s", session.ID, venueID)
	return models.FromDomainSession(session, venue.Price), nil
}

// Get возвращает текущий выбор и стоимость по актуальной цене площадки
func (s *Service) Get(ctx context.Context, selectionID string) (*models.SelectionResponse, error) {
	session, err := s.getSession(ctx, selectionID)
	if err != nil {
		return nil, err
	}

	venue, err := s.getVenue(ctx, session.VenueID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSession(session, venue.Price), nil
}

// Reset сбрасывает выбор в Empty
func (s *Service) Reset(ctx context.Context, selectionID string) (*models.SelectionResponse, error) {
	s.logger.Info("ResetSelection: selection=%s", selectionID)

	for attempt := 1; ; attempt++ {
		session, err := s.getSession(ctx, selectionID)
		if err != nil {
			return nil, err
		}

		session.Selection = domain.EmptySelection()
		session.UpdatedAt = s.timeProvider.Now()

		err = s.store.Save(ctx, session)
		switch {
		case err == nil:
			s.logger.Info("ResetSelection: selection id=%s reset", selectionID)
			return models.FromDomainSession(session, 0), nil
		case errors.Is(err, selectionStore.ErrSelectionConflict) && attempt < maxSaveAttempts:
			s.logger.Warn("ResetSelection: selection id=%s changed concurrently, retrying", selectionID)
			continue
		case errors.Is(err, selectionStore.ErrSelectionNotFound):
			return nil, ErrSelectionNotFound
		default:
			s.logger.Error("ResetSelection: failed to save selection id=%s: %v", selectionID, err)
			return nil, fmt.Errorf("%w: Reset - store error: %v", ErrInternal, err)
		}
	}
}

func (s *Service) getSession(ctx context.Context, selectionID string) (*domain.SelectionSession, error) {
	if selectionID == "" {
		return nil, fmt.Errorf("%w: selection id is required", ErrInvalidInput)
	}

	session, err := s.store.Get(ctx, selectionID)
	if err != nil {
		if errors.Is(err, selectionStore.ErrSelectionNotFound) {
			s.logger.Warn("Selections: selection id=%s not found", selectionID)
			return nil, ErrSelectionNotFound
		}
		s.logger.Error("Selections: store error for selection id=%s: %v", selectionID, err)
		return nil, fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}
	return session, nil
}

func (s *Service) getVenue(ctx context.Context, venueID string) (*domain.Venue, error) {
	venue, err := s.venueClient.GetVenue(ctx, venueID)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrVenueNotFound) {
			s.logger.Warn("Selections: venue id=%s not found", venueID)
			return nil, ErrVenueNotFound
		}
		if errors.Is(err, holidazeClient.ErrUnavailable) {
			s.logger.Error("Selections: Holidaze API unavailable for venue id=%s: %v", venueID, err)
			return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
		}
		s.logger.Error("Selections: failed to get venue id=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	return venue, nil
}

// UUIDGenerator генерирует идентификаторы сессий (UUID v4)
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
