package pick_date

import (
	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// IgnoreReason причина, по которой клик по дате проигнорирован
type IgnoreReason string

const (
	IgnoreNone        IgnoreReason = ""
	IgnorePast        IgnoreReason = "past"
	IgnoreUnavailable IgnoreReason = "unavailable"
)

// Request модель запроса на выбор даты
type Request struct {
	SelectionID string     // ID сессии выбора
	Date        types.Date // Календарный день, по которому кликнули
}

// Response модель ответа с состоянием выбора после клика
type Response struct {
	SelectionID string
	VenueID     string
	Accepted    bool         // false, если дата прошедшая или занятая
	Reason      IgnoreReason // Причина отказа (пусто, если принято)
	Selection   domain.Selection
	Pricing     domain.Pricing
}
