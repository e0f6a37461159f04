package list_submissions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers"
	"github.com/m04kA/SMC-HolidazeGateway/internal/api/middleware"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/submissions"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/submissions/models"
)

const (
	msgUnauthorized  = "authorization is required"
	msgInvalidLimit  = "limit must be a positive integer"
	msgInvalidFilter = "invalid status, expected one of: pending, created, rejected, failed"
)

type Handler struct {
	service SubmissionService
	logger  Logger
}

func NewHandler(service SubmissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/submissions?status=&venueId=&limit=
// Возвращает только заявки текущего пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customer, ok := middleware.GetCustomer(r.Context())
	if !ok {
		h.logger.Warn("GET /submissions - Customer is missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()
	serviceReq := &models.ListRequest{
		Customer: customer.Identity(),
	}

	// Получаем фильтры из query параметров (опционально)
	if status := query.Get("status"); status != "" {
		serviceReq.Status = &status
	}
	if venueID := query.Get("venueId"); venueID != "" {
		serviceReq.VenueID = &venueID
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil || limit == 0 {
			h.logger.Warn("GET /submissions - Invalid limit: customer=%s, limit=%s", customer.Identity(), limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		serviceReq.Limit = limit
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, submissions.ErrInvalidInput) {
			h.logger.Warn("GET /submissions - Invalid filter: customer=%s, error=%v", customer.Identity(), err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}

		h.logger.Error("GET /submissions - Failed to get submissions: customer=%s, error=%v", customer.Identity(), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /submissions - Submissions retrieved successfully: customer=%s, count=%d",
		customer.Identity(), len(result.Submissions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
