// Package calendar computes the date-anchored events for a year of a
// twelve-month almanac: federal holidays with observed-day shifting,
// observances, full moons with supermoon/blue-moon classification,
// equinoxes and solstices, sunrise/sunset times, and user birthdays.
//
// Months are zero-indexed (0 = January) throughout this package, and
// every astronomical instant is converted to the fixed Pacific civil
// timezone before it is reported as a calendar date.
package calendar

import (
	"fmt"
	"time"
)

// Weekday values as used by DayOfWeek (0 = Sunday).
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// CivilDate is a calendar date in local civil time. Month is 0-11.
type CivilDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Valid reports whether the date is a real date rather than a sentinel
// produced for years outside a lookup table.
func (d CivilDate) Valid() bool {
	return d.Month >= 0
}

// AddDays returns the civil date n days after d, crossing month and
// year boundaries as needed. n may be negative.
func (d CivilDate) AddDays(n int) CivilDate {
	t := time.Date(d.Year, time.Month(d.Month+1), d.Day, 12, 0, 0, 0, time.UTC)
	t = t.AddDate(0, 0, n)
	return CivilDate{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}
}

// String formats the date as YYYY-MM-DD.
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// DateKey is the composite EventMap key for a single calendar date.
// Month is 0-11, matching CivilDate.
type DateKey struct {
	Year  int
	Month int
	Day   int
}

// Key returns the map key for a civil date.
func (d CivilDate) Key() DateKey {
	return DateKey{Year: d.Year, Month: d.Month, Day: d.Day}
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month (0-11).
func DaysInMonth(year, month int) int {
	switch month {
	case 1: // February
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 3, 5, 8, 10: // April, June, September, November
		return 30
	default:
		return 31
	}
}

// DayOfWeek returns the weekday (0 = Sunday) of the given date.
func DayOfWeek(year, month, day int) int {
	return int(time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC).Weekday())
}

// NthWeekdayOfMonth returns the day-of-month of the n-th (1-indexed)
// occurrence of weekday in the month. The caller must keep n small
// enough that the result stays within the month; no bounds are
// enforced.
func NthWeekdayOfMonth(year, month, weekday, n int) int {
	first := DayOfWeek(year, month, 1)
	return 1 + ((weekday-first+7)%7) + (n-1)*7
}

// LastWeekdayOfMonth returns the day-of-month of the final occurrence
// of weekday in the month, counting back from the month's last day.
func LastWeekdayOfMonth(year, month, weekday int) int {
	last := DaysInMonth(year, month)
	lastW := DayOfWeek(year, month, last)
	return last - ((lastW-weekday+7)%7)
}

// dayOfYear returns the 1-indexed ordinal of the date within its year.
func dayOfYear(year, month, day int) int {
	doy := day
	for m := 0; m < month; m++ {
		doy += DaysInMonth(year, m)
	}
	return doy
}
