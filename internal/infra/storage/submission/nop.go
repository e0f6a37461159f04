package submission

import (
	"context"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// NopRepository журнал-заглушка для database.enabled = false
// Ничего не сохраняет, история всегда пустая
type NopRepository struct{}

func (NopRepository) Create(_ context.Context, submission *domain.Submission) (*domain.Submission, error) {
	return submission, nil
}

func (NopRepository) Finish(_ context.Context, _ int64, status domain.SubmissionStatus, _, _ *string) error {
	if !isFinalStatus(status) {
		return ErrInvalidStatus
	}
	return nil
}

func (NopRepository) GetByCustomer(_ context.Context, _ domain.SubmissionsFilter) ([]*domain.Submission, error) {
	return []*domain.Submission{}, nil
}
