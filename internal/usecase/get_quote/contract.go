package get_quote

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// VenueClient интерфейс клиента Holidaze API
type VenueClient interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
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
