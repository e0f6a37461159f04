package start_selection

import (
	"context"

	"github.com/m04kA/SMC-HolidazeGateway/internal/service/selections/models"
)

type SelectionService interface {
	Start(ctx context.Context, venueID string) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
