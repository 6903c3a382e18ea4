package availability

import (
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// Interval is a half-open [Start, End) time range within one date.
// The end instant is excluded, so back-to-back appointments never conflict.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps reports whether two half-open intervals intersect:
// [s1,e1) and [s2,e2) overlap iff s1 < e2 && e1 > s2. Strict inequalities
// keep abutting intervals (end of one == start of the next) conflict-free.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && i.End.IsAfter(other.Start)
}

// IsIntervalFree reports whether the candidate overlaps none of the
// existing intervals. This is the single shared overlap implementation for
// both the pre-filter and the authoritative server-side check.
func IsIntervalFree(candidate Interval, existing []Interval) bool {
	for _, busy := range existing {
		if candidate.Overlaps(busy) {
			return false
		}
	}
	return true
}

// SameLane reports whether two responsible-professional references fall in
// the same conflict lane. The unassigned lane (nil) is independent:
// bookings with no professional conflict only with other unassigned ones.
func SameLane(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// BusyIntervals projects the committed state of one professional lane on
// one date into conflict intervals: non-cancelled bookings in the lane plus
// partial-day blocks matching the category. Full-day blocks are handled
// upstream by the calendar rules. excludeBookingID removes one booking from
// the set: a reschedule must not conflict with its own original interval.
func BusyIntervals(
	bookings []*domain.Booking,
	blocks []domain.BlockedTime,
	categorySlug string,
	adminID *int64,
	excludeBookingID *int64,
) []Interval {
	busy := make([]Interval, 0, len(bookings)+len(blocks))

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if !SameLane(booking.ResponsibleAdminID, adminID) {
			continue
		}
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}
		busy = append(busy, Interval{Start: booking.StartTime, End: booking.EndTime})
	}

	for i := range blocks {
		block := &blocks[i]
		if block.IsFullDay || !block.AppliesToCategory(categorySlug) {
			continue
		}
		if block.StartTime.IsZero() || block.EndTime.IsZero() {
			continue
		}
		busy = append(busy, Interval{Start: block.StartTime, End: block.EndTime})
	}

	return busy
}
