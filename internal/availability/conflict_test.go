package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/ptr"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", Interval{"10:00", "11:00"}, Interval{"10:00", "11:00"}, true},
		{"partial overlap", Interval{"10:00", "11:00"}, Interval{"10:30", "11:30"}, true},
		{"contained", Interval{"10:00", "12:00"}, Interval{"10:30", "11:00"}, true},
		{"abutting after", Interval{"10:00", "11:00"}, Interval{"11:00", "12:00"}, false},
		{"abutting before", Interval{"11:00", "12:00"}, Interval{"10:00", "11:00"}, false},
		{"disjoint", Interval{"10:00", "11:00"}, Interval{"14:00", "15:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestIsIntervalFree(t *testing.T) {
	busy := []Interval{{"09:00", "10:00"}, {"12:00", "13:30"}}

	assert.True(t, IsIntervalFree(Interval{"10:00", "11:00"}, busy))
	assert.False(t, IsIntervalFree(Interval{"12:30", "13:00"}, busy))
	assert.True(t, IsIntervalFree(Interval{"13:30", "14:00"}, busy))
	assert.True(t, IsIntervalFree(Interval{"08:00", "09:00"}, nil))
}

func TestSameLane(t *testing.T) {
	assert.True(t, SameLane(nil, nil))
	assert.True(t, SameLane(ptr.Ptr[int64](7), ptr.Ptr[int64](7)))
	assert.False(t, SameLane(ptr.Ptr[int64](7), ptr.Ptr[int64](8)))
	assert.False(t, SameLane(nil, ptr.Ptr[int64](7)))
	assert.False(t, SameLane(ptr.Ptr[int64](7), nil))
}

func TestBusyIntervals(t *testing.T) {
	day := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	admin := ptr.Ptr[int64](1)
	otherAdmin := ptr.Ptr[int64](2)

	bookings := []*domain.Booking{
		{ID: 10, BookingDate: day, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed, ResponsibleAdminID: admin},
		{ID: 11, BookingDate: day, StartTime: "11:00", EndTime: "12:00", Status: domain.StatusCancelled, ResponsibleAdminID: admin},
		{ID: 12, BookingDate: day, StartTime: "13:00", EndTime: "14:00", Status: domain.StatusConfirmed, ResponsibleAdminID: otherAdmin},
		{ID: 13, BookingDate: day, StartTime: "15:00", EndTime: "16:00", Status: domain.StatusConfirmed, ResponsibleAdminID: nil},
	}

	t.Run("filters by lane and status", func(t *testing.T) {
		busy := BusyIntervals(bookings, nil, "manicure", admin, nil)
		assert.Equal(t, []Interval{{"10:00", "11:00"}}, busy)
	})

	t.Run("unassigned lane is independent", func(t *testing.T) {
		busy := BusyIntervals(bookings, nil, "manicure", nil, nil)
		assert.Equal(t, []Interval{{"15:00", "16:00"}}, busy)
	})

	t.Run("exclusion removes own interval", func(t *testing.T) {
		busy := BusyIntervals(bookings, nil, "manicure", admin, ptr.Ptr[int64](10))
		assert.Empty(t, busy)
	})

	t.Run("partial blocks included by category scope", func(t *testing.T) {
		blocks := []domain.BlockedTime{
			{BlockDate: day, StartTime: "09:00", EndTime: "09:30"},
			{BlockDate: day, StartTime: "17:00", EndTime: "18:00", ServiceCategory: ptr.Ptr("pedicure")},
			{BlockDate: day, IsFullDay: true},
		}

		busy := BusyIntervals(nil, blocks, "manicure", admin, nil)
		assert.Equal(t, []Interval{{"09:00", "09:30"}}, busy)

		busy = BusyIntervals(nil, blocks, "pedicure", admin, nil)
		assert.Equal(t, []Interval{{"09:00", "09:30"}, {"17:00", "18:00"}}, busy)
	})
}
