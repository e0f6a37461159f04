package pick_date

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// SelectionStore интерфейс хранилища сессий выбора дат
type SelectionStore interface {
	Get(ctx context.Context, id string) (*domain.SelectionSession, error)
	Save(ctx context.Context, session *domain.SelectionSession) error
}

// VenueClient интерфейс клиента Holidaze API
type VenueClient interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
}

// Metrics интерфейс метрик выбора дат
type Metrics interface {
	IncSelectionPick(result string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
