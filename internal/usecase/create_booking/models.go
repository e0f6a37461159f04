package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// Request модель заявки на бронирование
// Если указан SelectionID, даты и площадка берутся из сохраненного выбора
type Request struct {
	Customer    domain.Customer // Пользователь из bearer-токена
	VenueID     string          // ID площадки (можно не указывать при SelectionID)
	SelectionID *string         // Сессия выбора дат (опционально)
	DateFrom    types.Date      // Заезд, если выбор не используется
	DateTo      types.Date      // Выезд, если выбор не используется
	Guests      int             // Количество гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	SubmissionID int64  // ID записи в журнале (0, если журнал выключен)
	BookingID    string // ID бронирования в Holidaze API
	VenueID      string
	DateFrom     types.Date
	DateTo       types.Date
	Guests       int
	Nights       int
	TotalPrice   float64
	CreatedAt    time.Time
}
