package selections

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// SelectionStore интерфейс хранилища сессий выбора дат
type SelectionStore interface {
	Create(ctx context.Context, session *domain.SelectionSession) error
	Get(ctx context.Context, id string) (*domain.SelectionSession, error)
	Save(ctx context.Context, session *domain.SelectionSession) error
}

// VenueClient интерфейс клиента Holidaze API
type VenueClient interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
}

// IDGenerator генератор идентификаторов сессий
type IDGenerator interface {
	NewID() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
