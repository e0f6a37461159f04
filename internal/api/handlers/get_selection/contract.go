package get_selection

import (
	"context"

	"github.com/m04kA/SMC-HolidazeGateway/internal/service/selections/models"
)

type SelectionService interface {
	Get(ctx context.Context, selectionID string) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
