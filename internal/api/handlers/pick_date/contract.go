package pick_date

import (
	"context"

	pickDate "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/pick_date"
)

type PickDateUseCase interface {
	Execute(ctx context.Context, req *pickDate.Request) (*pickDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
