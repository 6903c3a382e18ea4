package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2024, date(2024, time.March, 31)},
		{2025, date(2025, time.April, 20)},
		{2026, date(2026, time.April, 5)},
		{2027, date(2027, time.March, 28)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EasterSunday(tt.year), "year %d", tt.year)
	}
}

func TestHolidayCalendar(t *testing.T) {
	cal := NewHolidayCalendar()

	t.Run("fixed holidays", func(t *testing.T) {
		assert.True(t, cal.IsHoliday(date(2025, time.January, 1)))
		assert.True(t, cal.IsHoliday(date(2025, time.April, 25)))
		assert.True(t, cal.IsHoliday(date(2025, time.December, 25)))

		name, ok := cal.HolidayName(date(2025, time.June, 10))
		assert.True(t, ok)
		assert.Equal(t, "Dia de Portugal", name)
	})

	t.Run("movable holidays 2025", func(t *testing.T) {
		// Easter 2025-04-20, Good Friday -2, Corpus Christi +60
		assert.True(t, cal.IsHoliday(date(2025, time.April, 18)))
		assert.True(t, cal.IsHoliday(date(2025, time.April, 20)))
		assert.True(t, cal.IsHoliday(date(2025, time.June, 19)))
	})

	t.Run("ordinary days", func(t *testing.T) {
		assert.False(t, cal.IsHoliday(date(2025, time.March, 12)))
		assert.False(t, cal.IsHoliday(date(2025, time.July, 1)))
	})

	t.Run("movable dates differ per year", func(t *testing.T) {
		// Good Friday 2025 is not a holiday in 2026
		assert.False(t, cal.IsHoliday(date(2026, time.April, 18)))
		assert.True(t, cal.IsHoliday(date(2026, time.April, 3)))
	})
}
