package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/ptr"
)

func baseInputs(d time.Time) DayInputs {
	return DayInputs{
		Date:     d,
		Now:      date(2025, time.June, 1),
		Policy:   domain.DefaultBusinessPolicy(),
		Holidays: NewHolidayCalendar(),
	}
}

func TestIsDateBookable(t *testing.T) {
	t.Run("ordinary working day is open", func(t *testing.T) {
		// 2025-06-03 is a Tuesday
		ok, reason := IsDateBookable(baseInputs(date(2025, time.June, 3)))
		assert.True(t, ok)
		assert.Equal(t, ReasonNone, reason)
	})

	t.Run("past date closed", func(t *testing.T) {
		ok, reason := IsDateBookable(baseInputs(date(2025, time.May, 30)))
		assert.False(t, ok)
		assert.Equal(t, ReasonPastDate, reason)
	})

	t.Run("today is not past", func(t *testing.T) {
		in := baseInputs(date(2025, time.June, 1))
		in.Policy.RecurringDaysOff = map[time.Weekday]bool{}
		ok, _ := IsDateBookable(in)
		assert.True(t, ok)
	})

	t.Run("holiday closed", func(t *testing.T) {
		ok, reason := IsDateBookable(baseInputs(date(2025, time.June, 10)))
		assert.False(t, ok)
		assert.Equal(t, ReasonHoliday, reason)
	})

	t.Run("exception never reopens a holiday", func(t *testing.T) {
		in := baseInputs(date(2025, time.June, 10))
		in.Exceptions = []domain.DateException{
			{ExceptionDate: date(2025, time.June, 10)},
		}
		ok, reason := IsDateBookable(in)
		assert.False(t, ok)
		assert.Equal(t, ReasonHoliday, reason)
	})

	t.Run("recurring day off closed", func(t *testing.T) {
		// 2025-06-02 is a Monday, default day off
		ok, reason := IsDateBookable(baseInputs(date(2025, time.June, 2)))
		assert.False(t, ok)
		assert.Equal(t, ReasonDayOff, reason)
	})

	t.Run("exception reopens recurring day off", func(t *testing.T) {
		in := baseInputs(date(2025, time.June, 2))
		in.Exceptions = []domain.DateException{
			{ExceptionDate: date(2025, time.June, 2)},
		}
		ok, reason := IsDateBookable(in)
		assert.True(t, ok)
		assert.Equal(t, ReasonNone, reason)
	})

	t.Run("category-scoped exception reopens only its category", func(t *testing.T) {
		in := baseInputs(date(2025, time.June, 2))
		in.CategorySlug = "manicure"
		in.Exceptions = []domain.DateException{
			{ExceptionDate: date(2025, time.June, 2), ServiceCategory: ptr.Ptr("pedicure")},
		}
		ok, reason := IsDateBookable(in)
		assert.False(t, ok)
		assert.Equal(t, ReasonDayOff, reason)

		in.CategorySlug = "pedicure"
		ok, _ = IsDateBookable(in)
		assert.True(t, ok)
	})

	t.Run("full-day block closed", func(t *testing.T) {
		in := baseInputs(date(2025, time.June, 3))
		in.Blocks = []domain.BlockedTime{
			{BlockDate: date(2025, time.June, 3), IsFullDay: true},
		}
		ok, reason := IsDateBookable(in)
		assert.False(t, ok)
		assert.Equal(t, ReasonFullDayOff, reason)
	})

	t.Run("full-day block scoped to another category ignored", func(t *testing.T) {
		in := baseInputs(date(2025, time.June, 3))
		in.CategorySlug = "manicure"
		in.Blocks = []domain.BlockedTime{
			{
				BlockDate:       date(2025, time.June, 3),
				IsFullDay:       true,
				ServiceCategory: ptr.Ptr("laser-facial"),
			},
		}
		ok, _ := IsDateBookable(in)
		assert.True(t, ok)
	})

	t.Run("laser outside last weekend closed", func(t *testing.T) {
		// 2025-06-14 is a Saturday, not the last of the month
		in := baseInputs(date(2025, time.June, 14))
		in.CategorySlug = "laser-corporal"
		ok, reason := IsDateBookable(in)
		assert.False(t, ok)
		assert.Equal(t, ReasonLaserWindow, reason)
	})

	t.Run("laser on last weekend open", func(t *testing.T) {
		in := baseInputs(date(2025, time.June, 28))
		in.CategorySlug = "laser-corporal"
		ok, reason := IsDateBookable(in)
		assert.True(t, ok)
		assert.Equal(t, ReasonNone, reason)
	})

	t.Run("laser rule does not touch other categories", func(t *testing.T) {
		in := baseInputs(date(2025, time.June, 14))
		in.CategorySlug = "manicure"
		ok, _ := IsDateBookable(in)
		assert.True(t, ok)
	})
}
