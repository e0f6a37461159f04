package pick_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers"
	pickDate "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/pick_date"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRequest     = "invalid pick request"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgSelectionNotFound  = "selection not found or expired"
	msgVenueNotFound      = "venue not found"
	msgSelectionConflict  = "selection was changed by another request, please retry"
)

type Handler struct {
	useCase PickDateUseCase
	logger  Logger
}

func NewHandler(useCase PickDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/{selectionId}/picks
// Прошедшая или занятая дата не ошибка: ответ 200 с accepted=false, выбор не меняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	selectionID := mux.Vars(r)["selectionId"]

	var req PickDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selections/{selectionId}/picks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(req); details != nil {
		h.logger.Warn("POST /selections/{selectionId}/picks - Request validation failed: id=%s, details=%v", selectionID, details)
		handlers.RespondValidationError(w, msgInvalidRequest, details)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(selectionID)
	if err != nil {
		h.logger.Warn("POST /selections/{selectionId}/picks - Invalid date: id=%s, error=%v", selectionID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, pickDate.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{selectionId}/picks - Selection not found: id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, pickDate.ErrVenueNotFound):
			h.logger.Warn("POST /selections/{selectionId}/picks - Venue not found: id=%s", selectionID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, pickDate.ErrConflict):
			h.logger.Warn("POST /selections/{selectionId}/picks - Concurrent update: id=%s", selectionID)
			handlers.RespondConflict(w, msgSelectionConflict)

		case errors.Is(err, pickDate.ErrInvalidInput):
			h.logger.Warn("POST /selections/{selectionId}/picks - Invalid input: id=%s, error=%v", selectionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, pickDate.ErrRemoteUnavailable):
			h.logger.Error("POST /selections/{selectionId}/picks - Holidaze API unavailable: id=%s, error=%v", selectionID, err)
			handlers.RespondRemoteUnavailable(w, err)

		default:
			h.logger.Error("POST /selections/{selectionId}/picks - Failed to pick date: id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{selectionId}/picks - Date picked: id=%s, date=%s, accepted=%t, state=%s",
		selectionID, req.Date, result.Accepted, result.Selection.State)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
