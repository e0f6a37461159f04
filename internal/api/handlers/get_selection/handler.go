package get_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/selections"
)

const (
	msgSelectionNotFound = "selection not found or expired"
	msgVenueNotFound     = "venue not found"
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

// Handle GET /api/v1/selections/{selectionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	selectionID := mux.Vars(r)["selectionId"]

	result, err := h.service.Get(r.Context(), selectionID)
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrSelectionNotFound), errors.Is(err, selections.ErrInvalidInput):
			h.logger.Warn("GET /selections/{selectionId} - Selection not found: id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, selections.ErrVenueNotFound):
			h.logger.Warn("GET /selections/{selectionId} - Venue of selection not found: id=%s", selectionID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, selections.ErrRemoteUnavailable):
			h.logger.Error("GET /selections/{selectionId} - Holidaze API unavailable: id=%s, error=%v", selectionID, err)
			handlers.RespondRemoteUnavailable(w, err)

		default:
			h.logger.Error("GET /selections/{selectionId} - Failed to get selection: id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /selections/{selectionId} - Selection retrieved: id=%s, state=%s", selectionID, result.State)
	handlers.RespondJSON(w, http.StatusOK, result)
}
