package calendar

import "time"

// The engine is scoped to one fixed civil timezone: US Pacific, with
// the post-2007 federal DST rule. Standard time is UTC-8, daylight
// time is UTC-7. The rule is reproduced here rather than loaded from
// the system tz database so that output is bit-reproducible on every
// platform.
const (
	standardOffsetHours = -8
	daylightOffsetHours = -7
)

// IsDST reports whether the given UTC instant falls within daylight
// saving time in the modeled timezone.
//
// DST begins the second Sunday of March at 02:00 local standard time
// (10:00 UTC) and ends the first Sunday of November at 02:00 local
// daylight time (09:00 UTC).
func IsDST(t time.Time) bool {
	u := t.UTC()
	year := u.Year()

	switch u.Month() {
	case time.January, time.February, time.December:
		return false
	case time.April, time.May, time.June, time.July, time.August, time.September, time.October:
		return true
	case time.March:
		day := 8 + ((7 - DayOfWeek(year, 2, 1)) % 7)
		transition := time.Date(year, time.March, day, 10, 0, 0, 0, time.UTC)
		return !u.Before(transition)
	default: // November
		day := 1 + ((7 - DayOfWeek(year, 10, 1)) % 7)
		transition := time.Date(year, time.November, day, 9, 0, 0, 0, time.UTC)
		return u.Before(transition)
	}
}

// UTCOffsetHours returns the local UTC offset in effect at the given
// UTC instant.
func UTCOffsetHours(t time.Time) int {
	if IsDST(t) {
		return daylightOffsetHours
	}
	return standardOffsetHours
}

// UTCToLocalCivilDate converts a UTC instant to the local calendar
// date. Every computed astronomical instant passes through here before
// being reported, so all output dates are in local civil time even
// when the instant's UTC date differs.
func UTCToLocalCivilDate(t time.Time) CivilDate {
	local := t.UTC().Add(time.Duration(UTCOffsetHours(t)) * time.Hour)
	return CivilDate{Year: local.Year(), Month: int(local.Month()) - 1, Day: local.Day()}
}
