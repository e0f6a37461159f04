package holidaze

import (
	"errors"
	"fmt"
)

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("holidaze client: venue not found")

	// ErrProfileNotFound возвращается, когда профиль пользователя не найден
	ErrProfileNotFound = errors.New("holidaze client: profile not found")

	// ErrRejected возвращается, когда API отклонил запрос (4xx с сообщением)
	ErrRejected = errors.New("holidaze client: request rejected")

	// ErrUnavailable возвращается при сетевых ошибках, таймаутах и 5xx
	ErrUnavailable = errors.New("holidaze client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidaze client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("holidaze client: invalid response")
)

// RemoteError ошибка, пришедшая от Holidaze API
// Message показывается пользователю как есть
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("holidaze api: status=%d: %s", e.StatusCode, e.Message)
}

// Unwrap 4xx считаются отказом, остальное недоступностью
func (e *RemoteError) Unwrap() error {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return ErrRejected
	}
	return ErrUnavailable
}
