package submissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HolidazeGateway/internal/service/submissions/models"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/ptr"
)

// Service сервис чтения журнала заявок
type Service struct {
	repo   SubmissionRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса журнала заявок
func NewService(repo SubmissionRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает историю заявок пользователя, новые первыми
// Опционально фильтрует по площадке и статусу
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.SubmissionListResponse, error) {
	s.logger.Info("ListSubmissions: customer=%s, venue=%s, status=%s", req.Customer, ptr.Value(req.VenueID), ptr.Value(req.Status))

	if req.Customer == "" {
		return nil, fmt.Errorf("%w: customer is required", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		if errors.Is(err, models.ErrInvalidStatus) {
			s.logger.Warn("ListSubmissions: invalid status=%s for customer=%s", *req.Status, req.Customer)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	submissions, err := s.repo.GetByCustomer(ctx, filter)
	if err != nil {
		s.logger.Error("ListSubmissions: repository error for customer=%s: %v", req.Customer, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSubmissions: fetched %d submissions for customer=%s", len(submissions), req.Customer)
	return models.FromDomainSubmissionList(submissions), nil
}
