package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePricing(t *testing.T) {
	assert.Equal(t, Pricing{Nights: 3, TotalPrice: 300},
		ComputePricing(day(2024, time.January, 1), day(2024, time.January, 4), 100))

	assert.Equal(t, Pricing{}, ComputePricing(time.Time{}, time.Time{}, 100))
	assert.Equal(t, Pricing{}, ComputePricing(day(2024, time.January, 1), time.Time{}, 100))
	assert.Equal(t, Pricing{}, ComputePricing(time.Time{}, day(2024, time.January, 4), 100))
}

func TestComputePricing_AbsoluteDifference(t *testing.T) {
	got := ComputePricing(day(2024, time.January, 4), day(2024, time.January, 1), 100)
	assert.Equal(t, Pricing{Nights: 3, TotalPrice: 300}, got)
}

func TestComputePricing_PartialDayRoundsUp(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 3, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, ComputePricing(from, to, 10).Nights)
}

func TestComputePricing_DaylightSavingTransitions(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	// Осенью сутки длятся 25 часов
	from := time.Date(2024, time.October, 26, 0, 0, 0, 0, oslo)
	to := time.Date(2024, time.October, 29, 0, 0, 0, 0, oslo)
	assert.Equal(t, Pricing{Nights: 3, TotalPrice: 60}, ComputePricing(from, to, 20))

	// Весной 23 часа
	from = time.Date(2024, time.March, 30, 0, 0, 0, 0, oslo)
	to = time.Date(2024, time.April, 2, 0, 0, 0, 0, oslo)
	assert.Equal(t, Pricing{Nights: 3, TotalPrice: 60}, ComputePricing(from, to, 20))
}

func TestComputePricing_NeverNegative(t *testing.T) {
	got := ComputePricing(day(2024, time.January, 1), day(2024, time.January, 4), -100)
	assert.Equal(t, 3, got.Nights)
	assert.Zero(t, got.TotalPrice)
}
