package get_quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/logger"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

type mockTimeProvider struct {
	now time.Time
}

func (m *mockTimeProvider) Now() time.Time { return m.now }

type fakeVenueClient struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenueClient) GetVenue(_ context.Context, _ string) (*domain.Venue, error) {
	return f.venue, f.err
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func date(d int) types.Date {
	return types.NewDateYMD(2024, time.March, d)
}

func newUseCase() *UseCase {
	client := &fakeVenueClient{venue: &domain.Venue{
		ID:        "v-1",
		Price:     50,
		MaxGuests: 4,
		Bookings:  []domain.ReservedInterval{{ID: "b-1", DateFrom: day(10), DateTo: day(15)}},
	}}
	uc := NewUseCase(client, time.UTC, logger.Nop())
	uc.timeProvider = &mockTimeProvider{now: time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name          string
		from, to      int
		wantNights    int
		wantAvailable bool
		wantInPast    bool
		wantInverted  bool
		wantConflicts int
	}{
		{name: "abutting checkout day", from: 15, to: 18, wantNights: 3, wantAvailable: true},
		{name: "abutting checkin day", from: 5, to: 10, wantNights: 5, wantAvailable: true},
		{name: "spans reservation", from: 8, to: 20, wantNights: 12, wantConflicts: 1},
		{name: "inside reservation", from: 11, to: 12, wantNights: 1, wantConflicts: 1},
		{name: "check-in in the past", from: 1, to: 3, wantNights: 2, wantInPast: true},
		{name: "inverted range", from: 20, to: 18, wantNights: 2, wantInverted: true},
		{name: "same day", from: 20, to: 20, wantNights: 0, wantInverted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newUseCase().Execute(context.Background(), &Request{
				VenueID:  "v-1",
				DateFrom: date(tt.from),
				DateTo:   date(tt.to),
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantNights, resp.Pricing.Nights)
			assert.Equal(t, float64(tt.wantNights)*50, resp.Pricing.TotalPrice)
			assert.Equal(t, tt.wantAvailable, resp.Available)
			assert.Equal(t, tt.wantInPast, resp.InPast)
			assert.Equal(t, tt.wantInverted, resp.Inverted)
			assert.Len(t, resp.Conflicts, tt.wantConflicts)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{VenueID: "v-1", DateFrom: date(15)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DateFrom: date(15), DateTo: date(18)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc.venueClient = &fakeVenueClient{err: holidazeClient.ErrVenueNotFound}
	_, err = uc.Execute(context.Background(), &Request{VenueID: "v-1", DateFrom: date(15), DateTo: date(18)})
	assert.ErrorIs(t, err, ErrVenueNotFound)

	uc.venueClient = &fakeVenueClient{err: holidazeClient.ErrUnavailable}
	_, err = uc.Execute(context.Background(), &Request{VenueID: "v-1", DateFrom: date(15), DateTo: date(18)})
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.NotErrorIs(t, err, ErrInternal)

	uc.venueClient = &fakeVenueClient{err: holidazeClient.ErrInvalidResponse}
	_, err = uc.Execute(context.Background(), &Request{VenueID: "v-1", DateFrom: date(15), DateTo: date(18)})
	assert.ErrorIs(t, err, ErrInternal)
}
