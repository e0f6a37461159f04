package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservedInterval_Contains(t *testing.T) {
	r := ReservedInterval{DateFrom: day(2024, time.March, 10), DateTo: day(2024, time.March, 15)}

	assert.False(t, r.Contains(day(2024, time.March, 9)))
	assert.True(t, r.Contains(day(2024, time.March, 10)))
	assert.True(t, r.Contains(day(2024, time.March, 14)))
	assert.False(t, r.Contains(day(2024, time.March, 15)), "checkout day is free for turnover")
}

func TestReservedInterval_Overlaps(t *testing.T) {
	r := ReservedInterval{DateFrom: day(2024, time.March, 10), DateTo: day(2024, time.March, 15)}

	tests := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"abuts after", day(2024, time.March, 15), day(2024, time.March, 18), false},
		{"abuts before", day(2024, time.March, 5), day(2024, time.March, 10), false},
		{"spans whole reservation", day(2024, time.March, 5), day(2024, time.March, 20), true},
		{"inside", day(2024, time.March, 11), day(2024, time.March, 12), true},
		{"tail overlap", day(2024, time.March, 14), day(2024, time.March, 16), true},
		{"head overlap", day(2024, time.March, 8), day(2024, time.March, 11), true},
		{"disjoint", day(2024, time.April, 1), day(2024, time.April, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Overlaps(tt.from, tt.to))
		})
	}
}

func TestVenue_AcceptsGuests(t *testing.T) {
	v := &Venue{MaxGuests: 4}

	assert.False(t, v.AcceptsGuests(0))
	assert.True(t, v.AcceptsGuests(1))
	assert.True(t, v.AcceptsGuests(4))
	assert.False(t, v.AcceptsGuests(5))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, time.March, 10, 23, 30, 0, 0, loc)

	got := StartOfDay(ts)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, loc), got)
}
