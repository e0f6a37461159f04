package pick_date

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда сессия выбора не найдена или истекла
	ErrSelectionNotFound = errors.New("pick_date: selection not found")

	// ErrVenueNotFound возвращается, когда площадка сессии больше не существует
	ErrVenueNotFound = errors.New("pick_date: venue not found")

	// ErrRemoteUnavailable возвращается, когда Holidaze API недоступен (сеть, таймаут, 5xx)
	ErrRemoteUnavailable = errors.New("pick_date: remote service unavailable")

	// ErrConflict возвращается, когда сессию не удалось сохранить из-за параллельных изменений
	ErrConflict = errors.New("pick_date: selection was modified concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pick_date: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("pick_date: internal error")
)
