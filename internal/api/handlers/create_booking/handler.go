package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers"
	"github.com/m04kA/SMC-HolidazeGateway/internal/api/middleware"
	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
	createBooking "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidRequest       = "invalid booking request"
	msgInvalidDate          = "invalid date, expected YYYY-MM-DD"
	msgUnauthorized         = "authorization is required"
	msgVenueNotFound        = "venue not found"
	msgSelectionNotFound    = "selection not found or expired"
	msgSelectionMismatch    = "selection belongs to another venue"
	msgSubmissionInProgress = "a booking request is already in progress"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customer, ok := middleware.GetCustomer(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Customer is missing in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(req); details != nil {
		h.logger.Warn("POST /bookings - Request validation failed: customer=%s, details=%v", customer.Identity(), details)
		handlers.RespondValidationError(w, msgInvalidRequest, details)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(customer)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, &req, customer.Identity(), err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, venue=%s, customer=%s",
		result.BookingID, result.VenueID, customer.Identity())
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, req *CreateBookingRequest, customer string, err error) {
	var validationErr *createBooking.ValidationError
	var remoteErr *holidazeClient.RemoteError

	switch {
	case errors.As(err, &validationErr):
		h.logger.Warn("POST /bookings - Validation failed: customer=%s, venue=%s, code=%s",
			customer, req.VenueID, validationErr.Code)
		handlers.RespondErrorWithCode(w, http.StatusUnprocessableEntity, validationErr.Code, validationErr.Message)

	case errors.Is(err, createBooking.ErrUnauthorized):
		h.logger.Warn("POST /bookings - Unauthorized: customer=%s", customer)
		handlers.RespondUnauthorized(w, msgUnauthorized)

	case errors.Is(err, createBooking.ErrSubmissionInProgress):
		h.logger.Warn("POST /bookings - Submission in progress: customer=%s, venue=%s", customer, req.VenueID)
		handlers.RespondConflict(w, msgSubmissionInProgress)

	case errors.Is(err, createBooking.ErrVenueNotFound):
		h.logger.Warn("POST /bookings - Venue not found: venue=%s", req.VenueID)
		handlers.RespondNotFound(w, msgVenueNotFound)

	case errors.Is(err, createBooking.ErrSelectionNotFound):
		h.logger.Warn("POST /bookings - Selection not found: customer=%s", customer)
		handlers.RespondNotFound(w, msgSelectionNotFound)

	case errors.Is(err, createBooking.ErrSelectionMismatch):
		h.logger.Warn("POST /bookings - Selection mismatch: customer=%s, venue=%s", customer, req.VenueID)
		handlers.RespondBadRequest(w, msgSelectionMismatch)

	case errors.Is(err, createBooking.ErrRemoteRejected) && errors.As(err, &remoteErr):
		// Сообщение удаленного API отдается пользователю как есть, статус 4xx сохраняется
		h.logger.Warn("POST /bookings - Rejected by Holidaze API: customer=%s, venue=%s, status=%d, message=%s",
			customer, req.VenueID, remoteErr.StatusCode, remoteErr.Message)
		handlers.RespondErrorWithCode(w, remoteErr.StatusCode, handlers.CodeRemoteRejected, remoteErr.Message)

	case errors.Is(err, createBooking.ErrRemoteUnavailable):
		h.logger.Error("POST /bookings - Holidaze API unavailable: customer=%s, venue=%s, error=%v",
			customer, req.VenueID, err)
		handlers.RespondRemoteUnavailable(w, err)

	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: customer=%s, error=%v", customer, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: customer=%s, venue=%s, error=%v",
			customer, req.VenueID, err)
		handlers.RespondInternalError(w)
	}
}
