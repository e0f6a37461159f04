package get_venue_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers"
	getVenueCalendar "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/get_venue_calendar"
)

const (
	msgInvalidMonth      = "invalid month, expected YYYY-MM"
	msgVenueNotFound     = "venue not found"
	msgSelectionNotFound = "selection not found or expired"
	msgSelectionMismatch = "selection belongs to another venue"
)

type Handler struct {
	useCase GetVenueCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetVenueCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/calendar?month=YYYY-MM&selectionId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	req := &getVenueCalendar.Request{
		VenueID: venueID,
		Month:   r.URL.Query().Get("month"),
	}
	if selectionID := r.URL.Query().Get("selectionId"); selectionID != "" {
		req.SelectionID = &selectionID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getVenueCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /venues/{venueId}/calendar - Invalid month: venue=%s, month=%s", venueID, req.Month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getVenueCalendar.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{venueId}/calendar - Venue not found: venue=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getVenueCalendar.ErrSelectionNotFound):
			h.logger.Warn("GET /venues/{venueId}/calendar - Selection not found: venue=%s", venueID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, getVenueCalendar.ErrSelectionMismatch):
			h.logger.Warn("GET /venues/{venueId}/calendar - Selection mismatch: venue=%s", venueID)
			handlers.RespondBadRequest(w, msgSelectionMismatch)

		case errors.Is(err, getVenueCalendar.ErrInvalidInput):
			h.logger.Warn("GET /venues/{venueId}/calendar - Invalid input: venue=%s, error=%v", venueID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getVenueCalendar.ErrRemoteUnavailable):
			h.logger.Error("GET /venues/{venueId}/calendar - Holidaze API unavailable: venue=%s, error=%v", venueID, err)
			handlers.RespondRemoteUnavailable(w, err)

		default:
			h.logger.Error("GET /venues/{venueId}/calendar - Failed to build calendar: venue=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{venueId}/calendar - Calendar built: venue=%s, month=%d-%02d, days=%d",
		venueID, result.Calendar.Year, result.Calendar.Month, len(result.Calendar.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
