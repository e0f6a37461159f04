package pick_date

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/availability"
	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SelectionID == "" {
		return fmt.Errorf("%w: selectionID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// guardPick проверяет, можно ли кликнуть по дню
// Прошедшие и занятые дни игнорируются без перехода состояния
func guardPick(d, now time.Time, reserved []domain.ReservedInterval) IgnoreReason {
	if availability.IsDateInPast(d, now) {
		return IgnorePast
	}
	if availability.IsDateUnavailable(d, reserved) {
		return IgnoreUnavailable
	}
	return IgnoreNone
}
