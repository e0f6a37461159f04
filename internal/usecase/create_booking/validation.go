package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/availability"
	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Customer.AccessToken == "" {
		return ErrUnauthorized
	}

	if req.VenueID == "" && req.SelectionID == nil {
		return fmt.Errorf("%w: venueId or selectionId is required", ErrInvalidInput)
	}

	if req.SelectionID != nil && *req.SelectionID == "" {
		return fmt.Errorf("%w: selectionId must not be empty", ErrInvalidInput)
	}

	return nil
}

// validateSubmission проверяет заявку перед отправкой
// Порядок проверок фиксирован, возвращается первая ошибка:
// 1. заданы обе даты
// 2. заезд не в прошлом
// 3. заезд раньше выезда
// 4. нет пересечений с бронированиями площадки
// 5. 1 <= guests <= venue.MaxGuests
func validateSubmission(from, to time.Time, guests int, venue *domain.Venue, now time.Time) *ValidationError {
	if from.IsZero() || to.IsZero() {
		return errDatesRequired()
	}

	if availability.IsDateInPast(from, now) {
		return errCheckInInPast()
	}

	if !from.Before(to) {
		return errInvalidRange()
	}

	if availability.HasConflict(from, to, venue.Bookings) {
		return errDatesConflict()
	}

	if !venue.AcceptsGuests(guests) {
		return errGuestsOutOfRange(venue.MaxGuests)
	}

	return nil
}

// inFlightKey ключ защиты от повторной отправки:
// сессия выбора, либо пара пользователь + площадка
func inFlightKey(req *Request, customer string, venueID string) string {
	if req.SelectionID != nil {
		return "selection:" + *req.SelectionID
	}
	return "customer:" + customer + ":venue:" + venueID
}
