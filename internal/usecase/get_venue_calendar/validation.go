package get_venue_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	if req.SelectionID != nil && *req.SelectionID == "" {
		return fmt.Errorf("%w: selectionID must not be empty", ErrInvalidInput)
	}

	return nil
}

// parseMonth разбирает "YYYY-MM"; пустая строка означает месяц now
func parseMonth(month string, now time.Time) (int, time.Month, error) {
	if month == "" {
		return now.Year(), now.Month(), nil
	}

	t, err := time.Parse(domain.MonthFormat, month)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	return t.Year(), t.Month(), nil
}
