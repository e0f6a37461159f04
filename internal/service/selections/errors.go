package selections

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда сессия выбора не найдена или истекла
	ErrSelectionNotFound = errors.New("selections: selection not found")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("selections: venue not found")

	// ErrRemoteUnavailable возвращается, когда Holidaze API недоступен (сеть, таймаут, 5xx)
	ErrRemoteUnavailable = errors.New("selections: remote service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("selections: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("selections: internal error")
)
