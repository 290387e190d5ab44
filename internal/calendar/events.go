package calendar

import "fmt"

// Event is one entry on a calendar date. IsMoon marks full moon
// entries so the renderer can style them.
type Event struct {
	Label  string `json:"label"`
	IsMoon bool   `json:"isMoon"`
}

// EventMap maps a calendar date to its ordered event list. The order
// within a date is fixed by category-processing order (federal
// holidays, observances, equinoxes/solstices, full moons, birthdays,
// sunrise/sunset) and within a category by catalog order; the renderer
// displays the sequence verbatim.
type EventMap map[DateKey][]Event

// Options selects which event categories ComputeEvents produces. Each
// flag independently gates its category.
type Options struct {
	FederalHolidays    bool       `json:"federalHolidays"`
	Observances        bool       `json:"observances"`
	SunriseSunset      bool       `json:"sunriseSunset"`
	FullMoons          bool       `json:"fullMoons"`
	EquinoxesSolstices bool       `json:"equinoxesSolstices"`
	Birthdays          []Birthday `json:"birthdays,omitempty"`
}

// DefaultOptions enables every category.
func DefaultOptions() Options {
	return Options{
		FederalHolidays:    true,
		Observances:        true,
		SunriseSunset:      true,
		FullMoons:          true,
		EquinoxesSolstices: true,
	}
}

// Default reference location used when the caller supplies none.
const (
	DefaultLatitude  = 47.67
	DefaultLongitude = -122.38
)

// ComputeEvents builds the full event map for a year. It is a pure
// function of its inputs: identical calls yield structurally identical
// maps, and concurrent calls share no state.
func ComputeEvents(year int, lat, lng float64, opts Options) EventMap {
	events := make(EventMap)
	add := func(d CivilDate, ev Event) {
		events[d.Key()] = append(events[d.Key()], ev)
	}

	if opts.FederalHolidays {
		for _, h := range FederalHolidays {
			date := h.Rule.Resolve(year)
			add(date, Event{Label: h.Name})
			if !h.ObservedEligible {
				continue
			}
			// Saturday holidays are observed the Friday before,
			// Sunday holidays the Monday after. The original event
			// is kept; the observed one is additional.
			switch DayOfWeek(date.Year, date.Month, date.Day) {
			case Saturday:
				add(date.AddDays(-1), Event{Label: h.Name + " (Observed)"})
			case Sunday:
				add(date.AddDays(1), Event{Label: h.Name + " (Observed)"})
			}
		}
	}

	if opts.Observances {
		for _, h := range Observances {
			date := h.Rule.Resolve(year)
			if !date.Valid() {
				continue
			}
			add(date, Event{Label: h.Name})
		}
	}

	if opts.EquinoxesSolstices {
		for _, s := range SeasonalEvents(year) {
			add(s.Date, Event{Label: s.Name})
		}
	}

	if opts.FullMoons {
		for _, m := range FullMoons(year) {
			add(CivilDate{Year: year, Month: m.Month, Day: m.Day}, Event{Label: m.Label(), IsMoon: true})
		}
	}

	for _, b := range opts.Birthdays {
		add(CivilDate{Year: year, Month: b.Month, Day: b.Day}, Event{Label: birthdayLabel(b, year)})
	}

	if opts.SunriseSunset {
		addSunEvents(events, year, lat, lng)
	}

	return events
}

// addSunEvents computes sunrise and sunset for the four grid-corner
// dates of each month only: first-row leftmost and last-row leftmost
// get sunrise, first-row rightmost and last-row rightmost get sunset.
// That caps the solar computation at 48 calls per year. Corner dates
// shared by adjacent months' overflow cells are deduplicated per kind.
func addSunEvents(events EventMap, year int, lat, lng float64) {
	type sunKey struct {
		kind SunEventKind
		date DateKey
	}
	seen := make(map[sunKey]bool)

	compute := func(cell DayCell, kind SunEventKind) {
		key := sunKey{kind, DateKey{Year: cell.Year, Month: cell.Month, Day: cell.Day}}
		if seen[key] {
			return
		}
		seen[key] = true

		t := SunTime(cell.Year, cell.Month, cell.Day, lat, lng, kind)
		label := t
		if t != NoSunrise && t != NoSunset {
			label = fmt.Sprintf("%s %s", kind, t)
		}
		events[key.date] = append(events[key.date], Event{Label: label})
	}

	for month := 0; month < 12; month++ {
		rows := ComputeMonthGrid(year, month)
		first, last := rows[0], rows[len(rows)-1]
		compute(first[0], Sunrise)
		compute(first[6], Sunset)
		compute(last[0], Sunrise)
		compute(last[6], Sunset)
	}
}

// birthdayLabel renders a birthday event label, with the person's age
// and an English ordinal suffix when the birth year is known.
func birthdayLabel(b Birthday, year int) string {
	if b.BirthYear == nil {
		return fmt.Sprintf("%s's Birthday", b.Name)
	}
	age := year - *b.BirthYear
	return fmt.Sprintf("%s's %d%s Birthday", b.Name, age, ordinalSuffix(age))
}

// ordinalSuffix returns the English ordinal suffix for n ("st", "nd",
// "rd", "th"). The teens are always "th".
func ordinalSuffix(n int) string {
	if r := n % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
