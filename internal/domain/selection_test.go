package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSelection_Next(t *testing.T) {
	d1 := day(2024, time.March, 15)
	d2 := day(2024, time.March, 18)
	d3 := day(2024, time.March, 20)

	tests := []struct {
		name string
		from Selection
		pick time.Time
		want Selection
	}{
		{
			name: "empty -> has start",
			from: EmptySelection(),
			pick: d1,
			want: Selection{State: SelectionHasStart, DateFrom: d1},
		},
		{
			name: "has start + later date -> complete",
			from: Selection{State: SelectionHasStart, DateFrom: d1},
			pick: d2,
			want: Selection{State: SelectionComplete, DateFrom: d1, DateTo: d2},
		},
		{
			name: "has start + earlier date -> restart",
			from: Selection{State: SelectionHasStart, DateFrom: d2},
			pick: d1,
			want: Selection{State: SelectionHasStart, DateFrom: d1},
		},
		{
			name: "has start + same date -> restart",
			from: Selection{State: SelectionHasStart, DateFrom: d1},
			pick: d1,
			want: Selection{State: SelectionHasStart, DateFrom: d1},
		},
		{
			name: "complete + any date -> has start",
			from: Selection{State: SelectionComplete, DateFrom: d1, DateTo: d2},
			pick: d3,
			want: Selection{State: SelectionHasStart, DateFrom: d3},
		},
		{
			name: "complete + date inside previous range -> has start",
			from: Selection{State: SelectionComplete, DateFrom: d1, DateTo: d3},
			pick: d2,
			want: Selection{State: SelectionHasStart, DateFrom: d2},
		},
		{
			name: "zero value behaves as empty",
			from: Selection{},
			pick: d2,
			want: Selection{State: SelectionHasStart, DateFrom: d2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Next(tt.pick))
		})
	}
}

func TestSelection_TwoPicksKeepInvariant(t *testing.T) {
	s := EmptySelection().Next(day(2024, time.March, 15)).Next(day(2024, time.March, 18))

	assert.True(t, s.IsComplete())
	assert.True(t, s.DateTo.After(s.DateFrom))
}

func TestSelection_Contains(t *testing.T) {
	s := Selection{State: SelectionComplete, DateFrom: day(2024, time.March, 15), DateTo: day(2024, time.March, 18)}

	assert.False(t, s.Contains(day(2024, time.March, 14)))
	assert.True(t, s.Contains(day(2024, time.March, 15)))
	assert.True(t, s.Contains(day(2024, time.March, 17)))
	assert.True(t, s.Contains(day(2024, time.March, 18)))
	assert.False(t, s.Contains(day(2024, time.March, 19)))

	start := Selection{State: SelectionHasStart, DateFrom: day(2024, time.March, 15)}
	assert.True(t, start.Contains(day(2024, time.March, 15)))
	assert.False(t, start.Contains(day(2024, time.March, 16)))

	assert.False(t, EmptySelection().Contains(day(2024, time.March, 15)))
}

func TestSelection_Pricing(t *testing.T) {
	complete := Selection{State: SelectionComplete, DateFrom: day(2024, time.March, 15), DateTo: day(2024, time.March, 18)}
	assert.Equal(t, Pricing{Nights: 3, TotalPrice: 150}, complete.Pricing(50))

	start := Selection{State: SelectionHasStart, DateFrom: day(2024, time.March, 15)}
	assert.Equal(t, Pricing{}, start.Pricing(50))
	assert.Equal(t, Pricing{}, EmptySelection().Pricing(50))
}
