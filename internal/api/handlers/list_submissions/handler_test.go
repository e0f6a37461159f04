package list_submissions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HolidazeGateway/internal/api/middleware"
	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/submissions"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/submissions/models"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/logger"
)

type fakeService struct {
	got  *models.ListRequest
	resp *models.SubmissionListResponse
	err  error
}

func (f *fakeService) List(_ context.Context, req *models.ListRequest) (*models.SubmissionListResponse, error) {
	f.got = req
	return f.resp, f.err
}

func doRequest(svc *fakeService, target string, withCustomer bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if withCustomer {
		req = req.WithContext(middleware.WithCustomer(req.Context(),
			domain.Customer{Name: "kari", Email: "kari@stud.noroff.no", AccessToken: "token"}))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.SubmissionListResponse{
		Submissions: []models.SubmissionResponse{{ID: 2, VenueID: "v-1", Status: "created"}},
	}}

	rec := doRequest(svc, "/api/v1/submissions?status=created&venueId=v-1&limit=10", true)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.got)
	assert.Equal(t, "kari@stud.noroff.no", svc.got.Customer)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "created", *svc.got.Status)
	require.NotNil(t, svc.got.VenueID)
	assert.Equal(t, "v-1", *svc.got.VenueID)
	assert.Equal(t, uint64(10), svc.got.Limit)

	assert.Contains(t, rec.Body.String(), `"submissions":[`)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{resp: &models.SubmissionListResponse{Submissions: []models.SubmissionResponse{}}}

	rec := doRequest(svc, "/api/v1/submissions", true)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Nil(t, svc.got.Status)
	assert.Nil(t, svc.got.VenueID)
	assert.Zero(t, svc.got.Limit)
	assert.JSONEq(t, `{"submissions":[]}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, doRequest(&fakeService{}, "/api/v1/submissions", false).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(&fakeService{}, "/api/v1/submissions?limit=-1", true).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(&fakeService{}, "/api/v1/submissions?limit=0", true).Code)
	assert.Equal(t, http.StatusBadRequest,
		doRequest(&fakeService{err: submissions.ErrInvalidInput}, "/api/v1/submissions?status=bogus", true).Code)
	assert.Equal(t, http.StatusInternalServerError,
		doRequest(&fakeService{err: submissions.ErrInternal}, "/api/v1/submissions", true).Code)
}
