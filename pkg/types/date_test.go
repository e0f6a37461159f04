package types

import (
	"encoding/json"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", d.String())

	_, err = ParseDate("15.03.2024")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDate_InKeepsCalendarDay(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	d := NewDateYMD(2024, time.March, 10)
	local := d.In(oslo)

	assert.Equal(t, 10, local.Day())
	assert.Equal(t, 0, local.Hour())
	assert.Equal(t, oslo, local.Location())
}

func TestNewDate_UsesOwnLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-03-09T20:00Z = 2024-03-10 05:00 JST
	ts := time.Date(2024, time.March, 9, 20, 0, 0, 0, time.UTC).In(tokyo)

	assert.Equal(t, "2024-03-10", NewDate(ts).String())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		From Date `json:"from"`
		To   Date `json:"to"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"from":"2024-01-01","to":null}`), &p))
	assert.Equal(t, "2024-01-01", p.From.String())
	assert.True(t, p.To.IsZero())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"2024-01-01","to":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"from":"01/01/2024"}`), &p))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-02", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-01")))
	assert.Equal(t, "2024-06-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
