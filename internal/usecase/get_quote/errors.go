package get_quote

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("get_quote: venue not found")

	// ErrRemoteUnavailable возвращается, когда Holidaze API недоступен (сеть, таймаут, 5xx)
	ErrRemoteUnavailable = errors.New("get_quote: remote service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_quote: internal error")
)
