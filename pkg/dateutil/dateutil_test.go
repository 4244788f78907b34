package dateutil_test

import (
	"testing"
	"time"

	"github.com/limbo/calai/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	// 03:00 UTC on the 2nd is still the evening of the 1st in Los Angeles
	instant := time.Date(2025, time.March, 2, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), dateutil.Day(instant, la))
	assert.Equal(t, time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), dateutil.Day(instant, time.UTC))
	assert.Equal(t, time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), dateutil.Day(instant, nil))
}

func TestDaysBetween(t *testing.T) {
	d1, err := dateutil.Parse("2025-03-30")
	require.NoError(t, err)
	d2, err := dateutil.Parse("2025-04-02")
	require.NoError(t, err)
	assert.Equal(t, 3, dateutil.DaysBetween(d1, d2))
	assert.Equal(t, -3, dateutil.DaysBetween(d2, d1))
	assert.Equal(t, 0, dateutil.DaysBetween(d1, d1.Add(5*time.Hour)))
}

func TestWindow(t *testing.T) {
	today, _ := dateutil.Parse("2025-01-03")
	from, to := dateutil.Window(today, 7)
	assert.Equal(t, "2024-12-28", dateutil.Format(from))
	assert.Equal(t, "2025-01-03", dateutil.Format(to))
	from, to = dateutil.Window(today, 0)
	assert.Equal(t, from, to)
}

func TestMonthBounds(t *testing.T) {
	first, last := dateutil.MonthBounds(time.February, 2024)
	assert.Equal(t, "2024-02-01", dateutil.Format(first))
	assert.Equal(t, "2024-02-29", dateutil.Format(last))
	first, last = dateutil.MonthBounds(time.December, 2025)
	assert.Equal(t, "2025-12-01", dateutil.Format(first))
	assert.Equal(t, "2025-12-31", dateutil.Format(last))
}
