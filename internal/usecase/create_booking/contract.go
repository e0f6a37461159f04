package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// VenueClient интерфейс клиента Holidaze API
type VenueClient interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
}

// BookingSink интерфейс приемника заявок на бронирование (Holidaze API)
type BookingSink interface {
	CreateBooking(ctx context.Context, accessToken string, booking domain.BookingRequest) (*domain.CreatedBooking, error)
}

// SelectionStore интерфейс хранилища сессий выбора дат
type SelectionStore interface {
	Get(ctx context.Context, id string) (*domain.SelectionSession, error)
	Save(ctx context.Context, session *domain.SelectionSession) error
}

// InFlightGuard не дает отправить вторую заявку, пока первая не завершилась
// Освобождение требует токен, полученный при захвате
type InFlightGuard interface {
	AcquireInFlight(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	ReleaseInFlight(ctx context.Context, key, token string) error
}

// SubmissionRepository интерфейс журнала заявок
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) (*domain.Submission, error)
	Finish(ctx context.Context, id int64, status domain.SubmissionStatus, remoteBookingID, message *string) error
}

// Metrics интерфейс метрик отправки заявок
type Metrics interface {
	IncSubmission(outcome string)
	IncValidationFailure(reason string)
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
