package availability

import "time"

// LastWeekendOfMonth returns the last Saturday and Sunday of a month:
// take the month's last calendar day; if it is a Sunday that is the last
// Sunday, otherwise step back to the preceding Sunday; the last Saturday
// is the day before.
func LastWeekendOfMonth(year int, month time.Month) (saturday, sunday time.Time) {
	// day 0 of the next month normalizes to the last day of this month
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	sunday = lastDay
	if wd := int(lastDay.Weekday()); wd != 0 {
		sunday = lastDay.AddDate(0, 0, -wd)
	}
	saturday = sunday.AddDate(0, 0, -1)
	return saturday, sunday
}

// IsLastWeekendWithinHorizon reports whether date is a member of the
// last-weekend set of any month within horizonMonths starting at from.
// Each (year, month) pair is computed independently; the month index is
// normalized mod 12 with year carry so the horizon crosses year rollover
// correctly.
func IsLastWeekendWithinHorizon(date, from time.Time, horizonMonths int) bool {
	startYear, startMonth := from.Year(), int(from.Month())-1

	for i := 0; i < horizonMonths; i++ {
		idx := startMonth + i
		year := startYear + idx/12
		month := time.Month(idx%12 + 1)

		saturday, sunday := LastWeekendOfMonth(year, month)
		if sameDate(date, saturday) || sameDate(date, sunday) {
			return true
		}
	}
	return false
}
