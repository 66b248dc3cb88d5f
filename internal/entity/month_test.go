package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonth_Range(t *testing.T) {
	start, end := Month{Year: 2025, Month: time.December}.Range(time.UTC)

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), end)

	last := time.Date(2025, time.December, 31, 23, 59, 59, 999, time.UTC)
	assert.True(t, !last.Before(start) && last.Before(end))
	assert.False(t, end.Before(end), "next month start is excluded")
}

func TestMonth_Order(t *testing.T) {
	dec := Month{Year: 2024, Month: time.December}
	jan := Month{Year: 2025, Month: time.January}

	assert.True(t, dec.Before(jan))
	assert.True(t, jan.After(dec))
	assert.False(t, jan.Before(jan))
}

func TestMonth_Format(t *testing.T) {
	m := Month{Year: 2025, Month: time.July}

	assert.Equal(t, "2025-07", m.String())
	assert.Equal(t, "July 2025", m.Label())
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-03")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2025, Month: time.March}, m)

	_, err = ParseMonth("2025-13")
	assert.Error(t, err)

	_, err = ParseMonth("March 2025")
	assert.Error(t, err)
}

func TestMonthOf_Location(t *testing.T) {
	utc := time.Date(2025, time.July, 31, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, Month{Year: 2025, Month: time.July}, MonthOf(utc, time.UTC))
	assert.Equal(t, Month{Year: 2025, Month: time.August}, MonthOf(utc, time.FixedZone("UTC+2", 2*60*60)))
}

func TestViewState_JSON(t *testing.T) {
	view := ViewState{
		Current:   Month{Year: 2025, Month: time.July},
		Available: []Month{{Year: 2025, Month: time.July}, {Year: 2024, Month: time.January}},
	}

	b, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{"current":"2025-07","available":["2025-07","2024-01"]}`, string(b))

	var empty ViewState
	require.NoError(t, json.Unmarshal([]byte(`{"current":"","available":[]}`), &empty))
	assert.True(t, empty.Current.IsZero())
}
