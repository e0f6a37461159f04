package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrDatesRequired возвращается, когда не выбраны заезд и выезд
	ErrDatesRequired = errors.New("create_booking: check-in and check-out dates are required")

	// ErrCheckInInPast возвращается, когда заезд раньше сегодняшнего дня
	ErrCheckInInPast = errors.New("create_booking: check-in is in the past")

	// ErrInvalidRange возвращается, когда выезд не позже заезда
	ErrInvalidRange = errors.New("create_booking: check-out is not after check-in")

	// ErrDatesConflict возвращается, когда интервал пересекается с существующими бронированиями
	ErrDatesConflict = errors.New("create_booking: dates conflict with existing bookings")

	// ErrGuestsOutOfRange возвращается, когда количество гостей вне [1, maxGuests]
	ErrGuestsOutOfRange = errors.New("create_booking: guests out of range")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrSelectionNotFound возвращается, когда сессия выбора не найдена или истекла
	ErrSelectionNotFound = errors.New("create_booking: selection not found")

	// ErrSelectionMismatch возвращается, когда сессия выбора относится к другой площадке
	ErrSelectionMismatch = errors.New("create_booking: selection belongs to another venue")

	// ErrSubmissionInProgress возвращается, когда по этому выбору уже идет отправка
	ErrSubmissionInProgress = errors.New("create_booking: a booking request is already in progress")

	// ErrRemoteRejected возвращается, когда Holidaze API отклонил заявку (4xx)
	ErrRemoteRejected = errors.New("create_booking: booking rejected by remote api")

	// ErrRemoteUnavailable возвращается при сетевых ошибках, таймаутах и 5xx
	ErrRemoteUnavailable = errors.New("create_booking: remote api unavailable")

	// ErrUnauthorized возвращается, когда у заявки нет токена пользователя
	ErrUnauthorized = errors.New("create_booking: customer token is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Коды ошибок валидации для ответа клиенту и метрик
const (
	CodeDatesRequired    = "dates_required"
	CodeCheckInInPast    = "check_in_in_past"
	CodeInvalidRange     = "invalid_range"
	CodeDatesConflict    = "dates_conflict"
	CodeGuestsOutOfRange = "guests_out_of_range"
)

// ValidationError ошибка локальной проверки заявки
// Kind - одна из sentinel-ошибок выше, Message показывается пользователю
type ValidationError struct {
	Kind    error
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newValidationError(kind error, code, message string) *ValidationError {
	return &ValidationError{Kind: kind, Code: code, Message: message}
}

func errDatesRequired() *ValidationError {
	return newValidationError(ErrDatesRequired, CodeDatesRequired, "select check-in and check-out dates")
}

func errCheckInInPast() *ValidationError {
	return newValidationError(ErrCheckInInPast, CodeCheckInInPast, "check-in cannot be in the past")
}

func errInvalidRange() *ValidationError {
	return newValidationError(ErrInvalidRange, CodeInvalidRange, "check-out must be after check-in")
}

func errDatesConflict() *ValidationError {
	return newValidationError(ErrDatesConflict, CodeDatesConflict, "dates conflict with existing bookings")
}

func errGuestsOutOfRange(maxGuests int) *ValidationError {
	return newValidationError(ErrGuestsOutOfRange, CodeGuestsOutOfRange,
		fmt.Sprintf("guests must be between 1 and %d", maxGuests))
}
