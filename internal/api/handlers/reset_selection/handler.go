package reset_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/selections"
)

const (
	msgSelectionNotFound = "selection not found or expired"
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

// Handle DELETE /api/v1/selections/{selectionId}
// Сбрасывает выбор дат в пустое состояние, сама сессия остается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	selectionID := mux.Vars(r)["selectionId"]

	result, err := h.service.Reset(r.Context(), selectionID)
	if err != nil {
		if errors.Is(err, selections.ErrSelectionNotFound) || errors.Is(err, selections.ErrInvalidInput) {
			h.logger.Warn("DELETE /selections/{selectionId} - Selection not found: id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)
			return
		}

		h.logger.Error("DELETE /selections/{selectionId} - Failed to reset selection: id=%s, error=%v", selectionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /selections/{selectionId} - Selection reset: id=%s", selectionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
