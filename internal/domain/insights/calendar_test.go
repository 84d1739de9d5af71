package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date anchors at noon UTC", func(t *testing.T) {
		d, err := ParseDate("2024-01-06")
		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 6, d.Day())
		assert.Equal(t, 12, d.Hour())
		assert.Equal(t, time.UTC, d.Location())
	})

	t.Run("malformed input is rejected", func(t *testing.T) {
		for _, input := range []string{"", "banana", "2024-1-5", "06-01-2024", "2024/01/06", "2024-13-01"} {
			_, err := ParseDate(input)
			assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
		}
	})
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2023-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", FormatDate(d))
}

func TestAddDaysRollsOverBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		start string
		n     int
		want  string
	}{
		{"within month", "2024-01-10", 5, "2024-01-15"},
		{"month boundary", "2024-01-31", 1, "2024-02-01"},
		{"year boundary backward", "2024-01-01", -1, "2023-12-31"},
		{"leap day", "2024-02-28", 1, "2024-02-29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(AddDays(d, tt.n)))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a, err := ParseDate("2023-12-30")
	require.NoError(t, err)
	b, err := ParseDate("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDayOfWeek(t *testing.T) {
	sun, err := ParseDate("2024-01-07")
	require.NoError(t, err)
	mon, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, Sunday, DayOfWeek(sun))
	assert.Equal(t, Monday, DayOfWeek(mon))
}

func TestWeekdayLabels(t *testing.T) {
	assert.Equal(t, "Sunday", WeekdayName(Sunday))
	assert.Equal(t, "Saturday", WeekdayName(Saturday))
	assert.Equal(t, "Wed", WeekdayAbbrev(Wednesday))
	assert.Equal(t, "", WeekdayName(7))
	assert.Equal(t, "", WeekdayAbbrev(-1))
}
