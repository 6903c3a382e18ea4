package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLastWeekendOfMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		saturday time.Time
		sunday   time.Time
	}{
		// month ends on Monday
		{2025, time.June, date(2025, time.June, 28), date(2025, time.June, 29)},
		// month ends on Sunday
		{2025, time.August, date(2025, time.August, 30), date(2025, time.August, 31)},
		// month ends on Wednesday
		{2025, time.December, date(2025, time.December, 27), date(2025, time.December, 28)},
		// February, non-leap
		{2025, time.February, date(2025, time.February, 22), date(2025, time.February, 23)},
	}

	for _, tt := range tests {
		sat, sun := LastWeekendOfMonth(tt.year, tt.month)
		assert.Equal(t, tt.saturday, sat, "%d-%s saturday", tt.year, tt.month)
		assert.Equal(t, tt.sunday, sun, "%d-%s sunday", tt.year, tt.month)
	}
}

func TestIsLastWeekendWithinHorizon(t *testing.T) {
	from := date(2025, time.June, 1)

	t.Run("member dates", func(t *testing.T) {
		assert.True(t, IsLastWeekendWithinHorizon(date(2025, time.June, 28), from, 6))
		assert.True(t, IsLastWeekendWithinHorizon(date(2025, time.June, 29), from, 6))
		// last weekend of November, the sixth and final month of the horizon
		assert.True(t, IsLastWeekendWithinHorizon(date(2025, time.November, 29), from, 6))
	})

	t.Run("mid-month weekend rejected", func(t *testing.T) {
		// 2025-06-15 is a Sunday but not the last one
		assert.False(t, IsLastWeekendWithinHorizon(date(2025, time.June, 15), from, 6))
	})

	t.Run("weekday rejected", func(t *testing.T) {
		assert.False(t, IsLastWeekendWithinHorizon(date(2025, time.June, 27), from, 6))
	})

	t.Run("horizon crosses year rollover", func(t *testing.T) {
		fromNov := date(2025, time.November, 10)
		// last weekend of March 2026
		assert.True(t, IsLastWeekendWithinHorizon(date(2026, time.March, 28), fromNov, 6))
	})

	t.Run("beyond horizon rejected", func(t *testing.T) {
		// December 2025 is the seventh month counted from June and falls
		// just past the horizon
		assert.False(t, IsLastWeekendWithinHorizon(date(2025, time.December, 27), from, 6))
		// last weekend of February 2026, even further out
		assert.False(t, IsLastWeekendWithinHorizon(date(2026, time.February, 28), from, 6))
	})
}
