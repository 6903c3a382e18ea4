package domain

import (
	"strings"
	"time"

	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// HoursWindow is a half-open working-hours window [Start, End)
type HoursWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// IsValid returns true when both bounds parse and Start < End
func (w HoursWindow) IsValid() bool {
	if w.Start.Validate() != nil || w.End.Validate() != nil {
		return false
	}
	return w.Start.IsBefore(w.End)
}

// DurationMinutes returns the window length in minutes
func (w HoursWindow) DurationMinutes() int {
	return w.End.Minutes() - w.Start.Minutes()
}

// BusinessPolicy is the explicitly loaded business configuration passed into
// the availability resolver at call time. It is a plain value, not global
// state, so the resolver stays a pure function of its inputs.
type BusinessPolicy struct {
	// RecurringDaysOff are weekdays on which the business is closed by
	// default (overridable per date by a DateException)
	RecurringDaysOff map[time.Weekday]bool

	// WorkingHours applies to every regular category
	WorkingHours HoursWindow

	// LaserWorkingHours applies to the laser category class, which is
	// additionally restricted to the last weekend of each month
	LaserWorkingHours HoursWindow

	// Timezone is the business-local timezone used for "today" and the
	// 24h change-window checks
	Timezone *time.Location
}

// DefaultBusinessPolicy returns the built-in policy used when the settings
// store has no overrides
func DefaultBusinessPolicy() BusinessPolicy {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return BusinessPolicy{
		RecurringDaysOff: map[time.Weekday]bool{
			time.Sunday: true,
			time.Monday: true,
		},
		WorkingHours:      HoursWindow{Start: DefaultWorkStart, End: DefaultWorkEnd},
		LaserWorkingHours: HoursWindow{Start: DefaultLaserWorkStart, End: DefaultLaserWorkEnd},
		Timezone:          loc,
	}
}

// IsLaserCategory reports whether a category slug belongs to the restricted
// laser class
func IsLaserCategory(slug string) bool {
	return strings.Contains(strings.ToLower(slug), LaserCategoryKeyword)
}

// HoursFor returns the working-hours window for a category slug.
// A simple two-entry lookup: regular vs laser.
func (p BusinessPolicy) HoursFor(categorySlug string) HoursWindow {
	if IsLaserCategory(categorySlug) {
		return p.LaserWorkingHours
	}
	return p.WorkingHours
}

// IsRecurringDayOff reports whether the weekday is a recurring closure day
func (p BusinessPolicy) IsRecurringDayOff(day time.Weekday) bool {
	return p.RecurringDaysOff[day]
}

// Location returns the policy timezone, falling back to UTC
func (p BusinessPolicy) Location() *time.Location {
	if p.Timezone != nil {
		return p.Timezone
	}
	return time.UTC
}
