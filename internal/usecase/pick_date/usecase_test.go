package pick_date

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	selectionStore "github.com/m04kA/SMC-HolidazeGateway/internal/infra/storage/selection"
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

type recordingMetrics struct {
	picks []string
}

func (r *recordingMetrics) IncSelectionPick(result string) { r.picks = append(r.picks, result) }

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func date(d int) types.Date {
	return types.NewDateYMD(2024, time.March, d)
}

type fixture struct {
	uc      *UseCase
	store   *selectionStore.MemoryStore
	metrics *recordingMetrics
}

// Сегодня 5 марта, площадка занята [10, 15)
func newFixture(t *testing.T, selection domain.Selection) *fixture {
	t.Helper()

	store := selectionStore.NewMemoryStore(time.Hour, time.UTC)
	require.NoError(t, store.Create(context.Background(), &domain.SelectionSession{
		ID:        "sel-1",
		VenueID:   "v-1",
		Selection: selection,
	}))

	client := &fakeVenueClient{venue: &domain.Venue{
		ID:        "v-1",
		Price:     50,
		MaxGuests: 4,
		Bookings:  []domain.ReservedInterval{{ID: "b-1", DateFrom: day(10), DateTo: day(15)}},
	}}
	metrics := &recordingMetrics{}

	uc := NewUseCase(store, client, metrics, time.UTC, logger.Nop())
	uc.timeProvider = &mockTimeProvider{now: time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)}

	return &fixture{uc: uc, store: store, metrics: metrics}
}

func (f *fixture) stored(t *testing.T) domain.Selection {
	t.Helper()
	session, err := f.store.Get(context.Background(), "sel-1")
	require.NoError(t, err)
	return session.Selection
}

func TestExecute_TwoClicksCompleteSelection(t *testing.T) {
	f := newFixture(t, domain.EmptySelection())
	ctx := context.Background()

	resp, err := f.uc.Execute(ctx, &Request{SelectionID: "sel-1", Date: date(15)})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Equal(t, domain.SelectionHasStart, resp.Selection.State)
	assert.Equal(t, domain.Pricing{}, resp.Pricing)

	resp, err = f.uc.Execute(ctx, &Request{SelectionID: "sel-1", Date: date(18)})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Equal(t, domain.SelectionComplete, resp.Selection.State)
	assert.True(t, resp.Selection.DateFrom.Equal(day(15)))
	assert.True(t, resp.Selection.DateTo.Equal(day(18)))
	assert.Equal(t, domain.Pricing{Nights: 3, TotalPrice: 150}, resp.Pricing)

	stored := f.stored(t)
	assert.True(t, stored.IsComplete())
	assert.Equal(t, []string{pickAccepted, pickAccepted}, f.metrics.picks)
}

func TestExecute_EarlierSecondClickRestarts(t *testing.T) {
	f := newFixture(t, domain.Selection{State: domain.SelectionHasStart, DateFrom: day(20)})

	resp, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(17)})
	require.NoError(t, err)

	assert.True(t, resp.Accepted)
	assert.Equal(t, domain.SelectionHasStart, resp.Selection.State)
	assert.True(t, resp.Selection.DateFrom.Equal(day(17)))
}

func TestExecute_ClickAfterCompleteStartsOver(t *testing.T) {
	f := newFixture(t, domain.Selection{State: domain.SelectionComplete, DateFrom: day(15), DateTo: day(18)})

	resp, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(25)})
	require.NoError(t, err)

	assert.Equal(t, domain.SelectionHasStart, resp.Selection.State)
	assert.True(t, resp.Selection.DateFrom.Equal(day(25)))
}

func TestExecute_IgnoresPastDate(t *testing.T) {
	initial := domain.Selection{State: domain.SelectionHasStart, DateFrom: day(20)}
	f := newFixture(t, initial)

	resp, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(4)})
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Equal(t, IgnorePast, resp.Reason)
	assert.Equal(t, domain.SelectionHasStart, resp.Selection.State)
	assert.True(t, f.stored(t).DateFrom.Equal(day(20)), "stored selection must be untouched")
	assert.Equal(t, []string{pickIgnoredPast}, f.metrics.picks)
}

func TestExecute_TodayIsNotPast(t *testing.T) {
	f := newFixture(t, domain.EmptySelection())

	resp, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(5)})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
}

func TestExecute_IgnoresReservedDate(t *testing.T) {
	f := newFixture(t, domain.EmptySelection())

	for _, d := range []int{10, 12, 14} {
		resp, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(d)})
		require.NoError(t, err)
		assert.False(t, resp.Accepted, "day %d is reserved", d)
		assert.Equal(t, IgnoreUnavailable, resp.Reason)
	}

	assert.True(t, f.stored(t).IsEmpty())
}

func TestExecute_CheckoutDayOfReservationIsSelectable(t *testing.T) {
	f := newFixture(t, domain.EmptySelection())

	resp, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(15)})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(t, domain.EmptySelection())

		_, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.uc.Execute(context.Background(), &Request{Date: date(20)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("selection not found", func(t *testing.T) {
		f := newFixture(t, domain.EmptySelection())

		_, err := f.uc.Execute(context.Background(), &Request{SelectionID: "missing", Date: date(20)})
		assert.ErrorIs(t, err, ErrSelectionNotFound)
	})

	t.Run("venue not found", func(t *testing.T) {
		f := newFixture(t, domain.EmptySelection())
		f.uc.venueClient = &fakeVenueClient{err: holidazeClient.ErrVenueNotFound}

		_, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(20)})
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("remote failure", func(t *testing.T) {
		f := newFixture(t, domain.EmptySelection())
		f.uc.venueClient = &fakeVenueClient{err: errors.New("boom")}

		_, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(20)})
		assert.ErrorIs(t, err, ErrInternal)
		assert.True(t, f.stored(t).IsEmpty())
	})

	t.Run("remote unavailable", func(t *testing.T) {
		f := newFixture(t, domain.EmptySelection())
		remoteErr := &holidazeClient.RemoteError{StatusCode: 503, Message: "maintenance"}
		f.uc.venueClient = &fakeVenueClient{err: remoteErr}

		_, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(20)})
		assert.ErrorIs(t, err, ErrRemoteUnavailable)
		assert.ErrorAs(t, err, &remoteErr)
		assert.NotErrorIs(t, err, ErrInternal)
		assert.True(t, f.stored(t).IsEmpty())
	})
}

// racingStore перед каждым Save дает другому клиенту записать свой клик
type racingStore struct {
	*selectionStore.MemoryStore
	races int
	pick  time.Time
}

func (r *racingStore) Save(ctx context.Context, session *domain.SelectionSession) error {
	if r.races > 0 {
		r.races--
		other, err := r.MemoryStore.Get(ctx, session.ID)
		if err != nil {
			return err
		}
		other.Selection = other.Selection.Next(r.pick)
		if err := r.MemoryStore.Save(ctx, other); err != nil {
			return err
		}
	}
	return r.MemoryStore.Save(ctx, session)
}

func TestExecute_ConcurrentPickIsNotLost(t *testing.T) {
	f := newFixture(t, domain.EmptySelection())
	f.uc.store = &racingStore{MemoryStore: f.store, races: 1, pick: day(18)}

	resp, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(20)})
	require.NoError(t, err)

	assert.True(t, resp.Accepted)
	assert.Equal(t, domain.SelectionComplete, resp.Selection.State)

	stored := f.stored(t)
	assert.Equal(t, domain.SelectionComplete, stored.State)
	assert.True(t, stored.DateFrom.Equal(day(18)), "the concurrent check-in click is kept")
	assert.True(t, stored.DateTo.Equal(day(20)))
}

func TestExecute_GivesUpOnPersistentConflict(t *testing.T) {
	f := newFixture(t, domain.EmptySelection())
	f.uc.store = &racingStore{MemoryStore: f.store, races: maxSaveAttempts, pick: day(18)}

	_, err := f.uc.Execute(context.Background(), &Request{SelectionID: "sel-1", Date: date(20)})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, f.metrics.picks)
}
