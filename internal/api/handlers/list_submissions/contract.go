package list_submissions

import (
	"context"

	"github.com/m04kA/SMC-HolidazeGateway/internal/service/submissions/models"
)

type SubmissionService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.SubmissionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
