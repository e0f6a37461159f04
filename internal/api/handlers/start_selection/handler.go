package start_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/selections"
)

const (
	msgVenueNotFound  = "venue not found"
	msgInvalidVenueID = "venue id is required"
)

type Handler struct {
	service SelectionService
	logger  Logger
}

func NewHandler(service SelectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/selections
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	result, err := h.service.Start(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{venueId}/selections - Venue not found: venue=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, selections.ErrInvalidInput):
			h.logger.Warn("POST /venues/{venueId}/selections - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, selections.ErrRemoteUnavailable):
			h.logger.Error("POST /venues/{venueId}/selections - Holidaze API unavailable: venue=%s, error=%v", venueID, err)
			handlers.RespondRemoteUnavailable(w, err)

		default:
			h.logger.Error("POST /venues/{venueId}/selections - Failed to start selection: venue=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{venueId}/selections - Selection started: id=%s, venue=%s", result.ID, venueID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
