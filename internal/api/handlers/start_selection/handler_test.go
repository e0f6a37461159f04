package start_selection

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/selections"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/selections/models"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/logger"
)

type fakeService struct {
	venueID string
	err     error
}

func (f *fakeService) Start(_ context.Context, venueID string) (*models.SelectionResponse, error) {
	f.venueID = venueID
	if f.err != nil {
		return nil, f.err
	}
	return &models.SelectionResponse{ID: "sel-1", VenueID: venueID, State: "empty"}, nil
}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/venues/{venueId}/selections", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/venues/v-1/selections", nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "v-1", svc.venueID)
	assert.JSONEq(t, `{"id":"sel-1","venueId":"v-1","state":"empty","dateFrom":null,"dateTo":null,"nights":0,"totalPrice":0,"updatedAt":"0001-01-01T00:00:00Z"}`,
		rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: selections.ErrVenueNotFound}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: selections.ErrInternal}).Code)
}

func TestHandle_RemoteUnavailable(t *testing.T) {
	err := fmt.Errorf("%w: %w", selections.ErrRemoteUnavailable,
		&holidazeClient.RemoteError{StatusCode: http.StatusServiceUnavailable, Message: "Try again in a minute"})

	rec := serve(&fakeService{err: err})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"code":"remote_unavailable","message":"Try again in a minute"}`, rec.Body.String())
}
