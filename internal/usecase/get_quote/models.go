package get_quote

import (
	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// Request модель запроса расчета стоимости
type Request struct {
	VenueID  string
	DateFrom types.Date
	DateTo   types.Date
}

// Response расчет стоимости и предварительная проверка доступности
// Проверка носит рекомендательный характер: окончательно решает удаленный API
type Response struct {
	VenueID     string
	DateFrom    types.Date
	DateTo      types.Date
	NightlyRate float64
	Pricing     domain.Pricing
	Available   bool                      // Интервал можно отправить на бронирование
	InPast      bool                      // Заезд раньше сегодняшнего дня
	Inverted    bool                      // Выезд не позже заезда
	Conflicts   []domain.ReservedInterval // Пересекающиеся бронирования
}
