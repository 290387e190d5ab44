package calendar

// RuleKind discriminates the HolidayRule variants.
type RuleKind int

const (
	// FixedDate places the holiday on the same month and day each year.
	FixedDate RuleKind = iota
	// NthWeekday places it on the n-th occurrence of a weekday.
	NthWeekday
	// LastWeekday places it on the final occurrence of a weekday.
	LastWeekday
	// Formula computes the date with a named pure function.
	Formula
)

// HolidayRule describes how a holiday's date is derived for a year.
// Rules are data, inspectable without being invoked, except for the
// few holidays (Easter, Lunar New Year, Election Day) that need a true
// formula.
type HolidayRule struct {
	Kind    RuleKind
	Month   int // 0-11; FixedDate, NthWeekday, LastWeekday
	Day     int // FixedDate
	Weekday int // 0 = Sunday; NthWeekday, LastWeekday
	N       int // 1-indexed; NthWeekday
	Fn      func(year int) CivilDate
}

// Resolve computes the rule's civil date for the given year. Formula
// rules may return an invalid sentinel date, which callers skip.
func (r HolidayRule) Resolve(year int) CivilDate {
	switch r.Kind {
	case FixedDate:
		return CivilDate{Year: year, Month: r.Month, Day: r.Day}
	case NthWeekday:
		return CivilDate{Year: year, Month: r.Month, Day: NthWeekdayOfMonth(year, r.Month, r.Weekday, r.N)}
	case LastWeekday:
		return CivilDate{Year: year, Month: r.Month, Day: LastWeekdayOfMonth(year, r.Month, r.Weekday)}
	default:
		return r.Fn(year)
	}
}

// Holiday pairs a display name with its date rule. ObservedEligible
// marks the federal holidays that get a weekend "(Observed)" shift.
type Holiday struct {
	Name             string
	Rule             HolidayRule
	ObservedEligible bool
}

// FederalHolidays is the US federal holiday catalog, in display order.
var FederalHolidays = []Holiday{
	{"New Year's Day", HolidayRule{Kind: FixedDate, Month: 0, Day: 1}, true},
	{"Martin Luther King Jr. Day", HolidayRule{Kind: NthWeekday, Month: 0, Weekday: Monday, N: 3}, false},
	{"Presidents' Day", HolidayRule{Kind: NthWeekday, Month: 1, Weekday: Monday, N: 3}, false},
	{"Memorial Day", HolidayRule{Kind: LastWeekday, Month: 4, Weekday: Monday}, false},
	{"Juneteenth", HolidayRule{Kind: FixedDate, Month: 5, Day: 19}, true},
	{"Independence Day", HolidayRule{Kind: FixedDate, Month: 6, Day: 4}, true},
	{"Labor Day", HolidayRule{Kind: NthWeekday, Month: 8, Weekday: Monday, N: 1}, false},
	{"Indigenous Peoples' Day", HolidayRule{Kind: NthWeekday, Month: 9, Weekday: Monday, N: 2}, false},
	{"Veterans Day", HolidayRule{Kind: FixedDate, Month: 10, Day: 11}, true},
	{"Thanksgiving", HolidayRule{Kind: NthWeekday, Month: 10, Weekday: Thursday, N: 4}, false},
	{"Christmas Day", HolidayRule{Kind: FixedDate, Month: 11, Day: 25}, true},
}

// Observances is the secondary catalog of non-federal observances, in
// display order. The two daylight saving entries mirror the transition
// rule in timezone.go and must stay consistent with it.
var Observances = []Holiday{
	{"Lunar New Year", HolidayRule{Kind: Formula, Fn: lunarNewYear}, false},
	{"Groundhog Day", HolidayRule{Kind: FixedDate, Month: 1, Day: 2}, false},
	{"Valentine's Day", HolidayRule{Kind: FixedDate, Month: 1, Day: 14}, false},
	{"St. Patrick's Day", HolidayRule{Kind: FixedDate, Month: 2, Day: 17}, false},
	{"Daylight Saving Begins", HolidayRule{Kind: NthWeekday, Month: 2, Weekday: Sunday, N: 2}, false},
	{"Easter", HolidayRule{Kind: Formula, Fn: Easter}, false},
	{"April Fools' Day", HolidayRule{Kind: FixedDate, Month: 3, Day: 1}, false},
	{"Earth Day", HolidayRule{Kind: FixedDate, Month: 3, Day: 22}, false},
	{"Cinco de Mayo", HolidayRule{Kind: FixedDate, Month: 4, Day: 5}, false},
	{"Mother's Day", HolidayRule{Kind: NthWeekday, Month: 4, Weekday: Sunday, N: 2}, false},
	{"Father's Day", HolidayRule{Kind: NthWeekday, Month: 5, Weekday: Sunday, N: 3}, false},
	{"Halloween", HolidayRule{Kind: FixedDate, Month: 9, Day: 31}, false},
	{"Election Day", HolidayRule{Kind: Formula, Fn: electionDay}, false},
	{"Daylight Saving Ends", HolidayRule{Kind: NthWeekday, Month: 10, Weekday: Sunday, N: 1}, false},
	{"Christmas Eve", HolidayRule{Kind: FixedDate, Month: 11, Day: 24}, false},
	{"New Year's Eve", HolidayRule{Kind: FixedDate, Month: 11, Day: 31}, false},
}

// Easter calculates Easter Sunday using the anonymous Gregorian
// computus (Meeus/Jones/Butcher). Exact integer arithmetic, valid for
// all Gregorian years.
func Easter(year int) CivilDate {
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
	day := ((h + l - 7*m + 114) % 31) + 1

	return CivilDate{Year: year, Month: month - 1, Day: day}
}

// lunarNewYearDates maps year to the month (0-11) and day of Lunar New
// Year. Computing it would need a full lunisolar calendar, so the
// supported range is a lookup table.
var lunarNewYearDates = map[int][2]int{
	2024: {1, 10},
	2025: {0, 29},
	2026: {1, 17},
	2027: {1, 6},
	2028: {0, 26},
	2029: {1, 13},
	2030: {1, 3},
	2031: {0, 23},
	2032: {1, 11},
	2033: {0, 31},
	2034: {1, 19},
	2035: {1, 8},
	2036: {0, 28},
	2037: {1, 15},
	2038: {1, 4},
	2039: {0, 24},
	2040: {1, 12},
}

// lunarNewYear returns the Lunar New Year date for years 2024-2040 and
// an invalid sentinel otherwise; the aggregator skips the sentinel
// silently.
func lunarNewYear(year int) CivilDate {
	md, ok := lunarNewYearDates[year]
	if !ok {
		return CivilDate{Year: year, Month: -1, Day: 0}
	}
	return CivilDate{Year: year, Month: md[0], Day: md[1]}
}

// electionDay returns the day after the first Monday of November.
func electionDay(year int) CivilDate {
	firstMonday := NthWeekdayOfMonth(year, 10, Monday, 1)
	return CivilDate{Year: year, Month: 10, Day: firstMonday + 1}
}
