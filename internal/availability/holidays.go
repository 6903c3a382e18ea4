package availability

import (
	"sync"
	"time"
)

// Portuguese national holidays. Fixed dates plus the Easter-relative movable
// ones. Holidays are a hard closure: never reopened by date exceptions.

type holidayDef struct {
	month time.Month
	day   int
	name  string
}

var fixedHolidays = []holidayDef{
	{time.January, 1, "Ano Novo"},
	{time.April, 25, "Dia da Liberdade"},
	{time.May, 1, "Dia do Trabalhador"},
	{time.June, 10, "Dia de Portugal"},
	{time.August, 15, "Assunção de Nossa Senhora"},
	{time.October, 5, "Implantação da República"},
	{time.November, 1, "Dia de Todos os Santos"},
	{time.December, 1, "Restauração da Independência"},
	{time.December, 8, "Imaculada Conceição"},
	{time.December, 25, "Natal"},
}

// EasterSunday computes Easter Sunday for a year using the Anonymous
// Gregorian algorithm
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// holidaysForYear builds the full holiday table for one year,
// keyed by month*100+day
func holidaysForYear(year int) map[int]string {
	table := make(map[int]string, len(fixedHolidays)+3)
	for _, h := range fixedHolidays {
		table[int(h.month)*100+h.day] = h.name
	}

	easter := EasterSunday(year)
	goodFriday := easter.AddDate(0, 0, -2)
	corpusChristi := easter.AddDate(0, 0, 60)

	table[int(goodFriday.Month())*100+goodFriday.Day()] = "Sexta-feira Santa"
	table[int(easter.Month())*100+easter.Day()] = "Páscoa"
	table[int(corpusChristi.Month())*100+corpusChristi.Day()] = "Corpo de Deus"

	return table
}

// HolidayCalendar resolves national holidays with a per-year cache.
// Safe for concurrent use.
type HolidayCalendar struct {
	mu    sync.RWMutex
	years map[int]map[int]string
}

// NewHolidayCalendar creates an empty calendar; years are computed lazily
func NewHolidayCalendar() *HolidayCalendar {
	return &HolidayCalendar{years: make(map[int]map[int]string)}
}

func (c *HolidayCalendar) yearTable(year int) map[int]string {
	c.mu.RLock()
	table, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return table
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if table, ok = c.years[year]; ok {
		return table
	}
	table = holidaysForYear(year)
	c.years[year] = table
	return table
}

// IsHoliday reports whether the date is a national holiday.
// Only the date components are compared; the location is irrelevant.
func (c *HolidayCalendar) IsHoliday(date time.Time) bool {
	_, ok := c.HolidayName(date)
	return ok
}

// HolidayName returns the holiday name for a date, if any
func (c *HolidayCalendar) HolidayName(date time.Time) (string, bool) {
	table := c.yearTable(date.Year())
	name, ok := table[int(date.Month())*100+date.Day()]
	return name, ok
}
