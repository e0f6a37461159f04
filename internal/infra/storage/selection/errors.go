package selection

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда сессия выбора не найдена или истекла
	ErrSelectionNotFound = errors.New("selection.store: selection not found")

	// ErrSelectionConflict возвращается, когда сессию успели изменить после чтения
	ErrSelectionConflict = errors.New("selection.store: selection was modified concurrently")

	// ErrEncode возвращается при ошибке сериализации сессии
	ErrEncode = errors.New("selection.store: failed to encode selection")

	// ErrDecode возвращается при ошибке разбора сохраненной сессии
	ErrDecode = errors.New("selection.store: failed to decode selection")

	// ErrStorage возвращается при ошибках Redis
	ErrStorage = errors.New("selection.store: storage error")
)
