// Package availability is the shared availability and conflict resolver:
// calendar closure rules, slot generation and interval conflict checks.
// Everything here is a pure function over explicitly passed inputs, so the
// same code runs for the optimistic pre-check and for the authoritative
// server-side validation before commit.
package availability

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
)

// Reason identifies why a date resolved to closed
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonPastDate    Reason = "past_date"
	ReasonHoliday     Reason = "holiday"
	ReasonFullDayOff  Reason = "blocked_full_day"
	ReasonDayOff      Reason = "recurring_day_off"
	ReasonLaserWindow Reason = "outside_laser_weekend"
)

// DayInputs carries everything the calendar rule engine needs to decide
// whether one date is open for one category
type DayInputs struct {
	Date         time.Time
	Now          time.Time // current instant, business timezone
	CategorySlug string

	Policy     domain.BusinessPolicy
	Holidays   *HolidayCalendar
	Blocks     []domain.BlockedTime   // blocks for Date
	Exceptions []domain.DateException // exceptions for Date
}

// IsDateBookable resolves whether the business is open on a date for a
// category. Checks run in a fixed order, first match wins:
//
//  1. date strictly in the past
//  2. national holiday (absolute, precedes the exception check)
//  3. admin full-day block with matching category scope
//  4. recurring day off without a matching date exception
//  5. laser class outside the last-weekend set of the forward horizon
func IsDateBookable(in DayInputs) (bool, Reason) {
	if isDateInPast(in.Date, in.Now) {
		return false, ReasonPastDate
	}

	if in.Holidays != nil && in.Holidays.IsHoliday(in.Date) {
		return false, ReasonHoliday
	}

	for i := range in.Blocks {
		block := &in.Blocks[i]
		if block.IsFullDay && sameDate(block.BlockDate, in.Date) && block.AppliesToCategory(in.CategorySlug) {
			return false, ReasonFullDayOff
		}
	}

	if in.Policy.IsRecurringDayOff(in.Date.Weekday()) && !hasMatchingException(in) {
		return false, ReasonDayOff
	}

	if domain.IsLaserCategory(in.CategorySlug) &&
		!IsLastWeekendWithinHorizon(in.Date, in.Now, domain.LaserHorizonMonths) {
		return false, ReasonLaserWindow
	}

	return true, ReasonNone
}

func hasMatchingException(in DayInputs) bool {
	for i := range in.Exceptions {
		exc := &in.Exceptions[i]
		if sameDate(exc.ExceptionDate, in.Date) && exc.AppliesToCategory(in.CategorySlug) {
			return true
		}
	}
	return false
}

// sameDate compares two instants by calendar date only
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether date is strictly before today
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
