package submissions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	"github.com/m04kA/SMC-HolidazeGateway/internal/service/submissions/models"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/logger"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/ptr"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

type fakeRepo struct {
	submissions []*domain.Submission
	err         error
	lastFilter  domain.SubmissionsFilter
}

func (f *fakeRepo) GetByCustomer(_ context.Context, filter domain.SubmissionsFilter) ([]*domain.Submission, error) {
	f.lastFilter = filter
	return f.submissions, f.err
}

func TestList(t *testing.T) {
	repo := &fakeRepo{submissions: []*domain.Submission{
		{
			ID:              2,
			Customer:        "ola@stud.noroff.no",
			VenueID:         "v-1",
			DateFrom:        types.NewDateYMD(2024, 3, 15),
			DateTo:          types.NewDateYMD(2024, 3, 18),
			Guests:          2,
			Nights:          3,
			TotalPrice:      150,
			Status:          domain.SubmissionCreated,
			RemoteBookingID: ptr.Ptr("b-9"),
		},
	}}
	svc := NewService(repo, logger.Nop())

	resp, err := svc.List(context.Background(), &models.ListRequest{
		Customer: "ola@stud.noroff.no",
		Status:   ptr.Ptr("created"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Submissions, 1)
	item := resp.Submissions[0]
	assert.Equal(t, int64(2), item.ID)
	assert.Equal(t, "created", item.Status)
	assert.Equal(t, "2024-03-15", item.DateFrom.String())
	assert.Equal(t, "b-9", *item.RemoteBookingID)

	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.SubmissionCreated, *repo.lastFilter.Status)
	assert.Equal(t, "ola@stud.noroff.no", repo.lastFilter.Customer)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	svc := NewService(&fakeRepo{}, logger.Nop())

	resp, err := svc.List(context.Background(), &models.ListRequest{Customer: "ola"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Submissions)
	assert.Empty(t, resp.Submissions)
}

func TestList_InvalidInput(t *testing.T) {
	svc := NewService(&fakeRepo{}, logger.Nop())

	_, err := svc.List(context.Background(), &models.ListRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListRequest{Customer: "ola", Status: ptr.Ptr("confirmed")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, logger.Nop())

	_, err := svc.List(context.Background(), &models.ListRequest{Customer: "ola"})
	assert.ErrorIs(t, err, ErrInternal)
}
