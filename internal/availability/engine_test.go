package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

var march10to15 = []domain.ReservedInterval{
	{ID: "b1", DateFrom: day(time.March, 10), DateTo: day(time.March, 15)},
}

func TestIsDateUnavailable(t *testing.T) {
	tests := []struct {
		date time.Time
		want bool
	}{
		{day(time.March, 9), false},
		{day(time.March, 10), true},
		{day(time.March, 12), true},
		{day(time.March, 14), true},
		{day(time.March, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format(domain.DateFormat), func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateUnavailable(tt.date, march10to15))
		})
	}

	assert.False(t, IsDateUnavailable(day(time.March, 12), nil))
}

func TestIsDateUnavailable_MultipleIntervals(t *testing.T) {
	reserved := []domain.ReservedInterval{
		{DateFrom: day(time.March, 1), DateTo: day(time.March, 3)},
		{DateFrom: day(time.March, 20), DateTo: day(time.March, 22)},
	}

	assert.True(t, IsDateUnavailable(day(time.March, 2), reserved))
	assert.False(t, IsDateUnavailable(day(time.March, 10), reserved))
	assert.True(t, IsDateUnavailable(day(time.March, 21), reserved))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2024, time.March, 12, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(day(time.March, 11), now))
	assert.False(t, IsDateInPast(day(time.March, 12), now), "today is not in the past")
	assert.False(t, IsDateInPast(time.Date(2024, time.March, 12, 8, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(day(time.March, 13), now))
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"check-in on checkout day", day(time.March, 15), day(time.March, 18), false},
		{"checkout on check-in day", day(time.March, 5), day(time.March, 10), false},
		{"spans reservation", day(time.March, 5), day(time.March, 20), true},
		{"same interval", day(time.March, 10), day(time.March, 15), true},
		{"starts inside", day(time.March, 14), day(time.March, 16), true},
		{"ends inside", day(time.March, 8), day(time.March, 11), true},
		{"before", day(time.March, 1), day(time.March, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(tt.from, tt.to, march10to15))
		})
	}
}

// Для [a,b) и [c,d): конфликт <=> a < d && b > c
func TestHasConflict_MatchesHalfOpenOverlap(t *testing.T) {
	for a := 1; a <= 10; a++ {
		for b := a + 1; b <= 11; b++ {
			for c := 1; c <= 10; c++ {
				for d := c + 1; d <= 11; d++ {
					reserved := []domain.ReservedInterval{{DateFrom: day(time.May, c), DateTo: day(time.May, d)}}
					want := a < d && b > c
					got := HasConflict(day(time.May, a), day(time.May, b), reserved)
					if got != want {
						t.Fatalf("HasConflict([%d,%d), [%d,%d)) = %v, want %v", a, b, c, d, got, want)
					}
				}
			}
		}
	}
}

func TestConflictingIntervals(t *testing.T) {
	reserved := []domain.ReservedInterval{
		{ID: "a", DateFrom: day(time.March, 1), DateTo: day(time.March, 5)},
		{ID: "b", DateFrom: day(time.March, 10), DateTo: day(time.March, 15)},
		{ID: "c", DateFrom: day(time.March, 20), DateTo: day(time.March, 25)},
	}

	got := ConflictingIntervals(day(time.March, 4), day(time.March, 12), reserved)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "b", got[1].ID)
	}

	assert.Empty(t, ConflictingIntervals(day(time.March, 5), day(time.March, 10), reserved))
}

func TestIsSelectable(t *testing.T) {
	now := day(time.March, 11)

	assert.False(t, IsSelectable(day(time.March, 9), now, march10to15))
	assert.False(t, IsSelectable(day(time.March, 12), now, march10to15))
	assert.True(t, IsSelectable(day(time.March, 15), now, march10to15))
}
