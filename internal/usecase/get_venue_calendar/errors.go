package get_venue_calendar

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrSelectionNotFound возвращается, когда сессия выбора не найдена или истекла
	ErrSelectionNotFound = errors.New("selection not found")

	// ErrSelectionMismatch возвращается, когда сессия выбора относится к другой площадке
	ErrSelectionMismatch = errors.New("selection belongs to another venue")

	// ErrInvalidMonth возвращается при некорректном месяце
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrRemoteUnavailable возвращается, когда Holidaze API недоступен (сеть, таймаут, 5xx)
	ErrRemoteUnavailable = errors.New("remote service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
