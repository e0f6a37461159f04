package submissions

import (
	"context"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// SubmissionRepository интерфейс журнала заявок (чтение)
type SubmissionRepository interface {
	GetByCustomer(ctx context.Context, filter domain.SubmissionsFilter) ([]*domain.Submission, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
