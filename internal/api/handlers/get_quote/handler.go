package get_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers"
	getQuote "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/get_quote"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

const (
	msgInvalidDateFrom = "invalid dateFrom, expected YYYY-MM-DD"
	msgInvalidDateTo   = "invalid dateTo, expected YYYY-MM-DD"
	msgDatesRequired   = "dateFrom and dateTo are required"
	msgVenueNotFound   = "venue not found"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/quote?dateFrom=YYYY-MM-DD&dateTo=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]
	query := r.URL.Query()

	if query.Get("dateFrom") == "" || query.Get("dateTo") == "" {
		h.logger.Warn("GET /venues/{venueId}/quote - Missing dates: venue=%s", venueID)
		handlers.RespondBadRequest(w, msgDatesRequired)
		return
	}

	dateFrom, err := types.ParseDate(query.Get("dateFrom"))
	if err != nil {
		h.logger.Warn("GET /venues/{venueId}/quote - Invalid dateFrom: venue=%s, error=%v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidDateFrom)
		return
	}
	dateTo, err := types.ParseDate(query.Get("dateTo"))
	if err != nil {
		h.logger.Warn("GET /venues/{venueId}/quote - Invalid dateTo: venue=%s, error=%v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTo)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getQuote.Request{
		VenueID:  venueID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
	})
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{venueId}/quote - Venue not found: venue=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("GET /venues/{venueId}/quote - Invalid input: venue=%s, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgDatesRequired)

		case errors.Is(err, getQuote.ErrRemoteUnavailable):
			h.logger.Error("GET /venues/{venueId}/quote - Holidaze API unavailable: venue=%s, error=%v", venueID, err)
			handlers.RespondRemoteUnavailable(w, err)

		default:
			h.logger.Error("GET /venues/{venueId}/quote - Failed to get quote: venue=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{venueId}/quote - Quote calculated: venue=%s, nights=%d, available=%t",
		venueID, result.Pricing.Nights, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
