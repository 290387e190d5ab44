package calendar

import (
	"fmt"
	"math"
	"time"
)

// unixEpochJDE is the Julian Ephemeris Day of the Unix epoch
// (1970-01-01 00:00 UTC).
const unixEpochJDE = 2440587.5

// seasonalMarker holds the low-precision ephemeris polynomial for one
// equinox or solstice. The JDE of the event is the 4th-degree
// polynomial in Y = (year - 2000) / 1000.
type seasonalMarker struct {
	name string
	c    [5]float64
}

var seasonalMarkers = []seasonalMarker{
	{"Spring Equinox", [5]float64{2451623.80984, 365242.37404, 0.05169, -0.00411, -0.00057}},
	{"Summer Solstice", [5]float64{2451716.56767, 365241.62603, 0.00325, 0.00888, -0.00030}},
	{"Fall Equinox", [5]float64{2451810.21715, 365242.01767, -0.11575, 0.00337, 0.00078}},
	{"Winter Solstice", [5]float64{2451900.05952, 365242.74049, -0.06223, -0.00823, 0.00032}},
}

// SeasonEvent is one equinox or solstice localized to a civil date.
type SeasonEvent struct {
	Name string    `json:"name"`
	Date CivilDate `json:"date"`
}

// jdeToUTC converts a Julian Ephemeris Day to a UTC instant.
func jdeToUTC(jde float64) time.Time {
	ms := (jde - unixEpochJDE) * 86400000
	return time.UnixMilli(int64(math.Round(ms))).UTC()
}

// SeasonalEvents computes the year's two equinoxes and two solstices,
// localized to the modeled timezone. An event near midnight UTC can
// land on the previous local day; the localized date is authoritative.
func SeasonalEvents(year int) []SeasonEvent {
	y := float64(year-2000) / 1000
	events := make([]SeasonEvent, 0, len(seasonalMarkers))
	for _, m := range seasonalMarkers {
		jde := m.c[0] + y*(m.c[1]+y*(m.c[2]+y*(m.c[3]+y*m.c[4])))
		events = append(events, SeasonEvent{
			Name: m.name,
			Date: UTCToLocalCivilDate(jdeToUTC(jde)),
		})
	}
	return events
}

// SunEventKind selects sunrise or sunset.
type SunEventKind int

const (
	Sunrise SunEventKind = iota
	Sunset
)

func (k SunEventKind) String() string {
	if k == Sunrise {
		return "Sunrise"
	}
	return "Sunset"
}

// Sentinel labels for dates with no sunrise or sunset (polar day or
// night at extreme latitudes).
const (
	NoSunrise = "No sunrise"
	NoSunset  = "No sunset"
)

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

// solarDeclination approximates the sun's declination in radians for a
// day of year, from an axial-tilt cosine model with a fixed
// equation-of-center correction for orbital eccentricity.
func solarDeclination(doy int) float64 {
	d := float64(doy)
	center := 0.0334 * math.Sin(2*math.Pi/365.24*(d-2))
	return math.Asin(math.Sin(degToRad(-23.44)) * math.Cos(2*math.Pi/365.24*(d+10)+center))
}

// equationOfTime approximates the difference between mean and true
// solar time, in minutes, for a day of year.
func equationOfTime(doy int) float64 {
	b := 2 * math.Pi * float64(doy-81) / 364
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

// SunTime computes the local sunrise or sunset time for a date and
// location, formatted as a 12-hour clock string ("6:54 AM"). Under
// polar conditions it returns the NoSunrise/NoSunset sentinel instead.
//
// The DST offset is resolved at the date's solar-noon instant rather
// than at the event itself, which avoids a circular dependency on DST
// transition days.
func SunTime(year, month, day int, lat, lng float64, kind SunEventKind) string {
	doy := dayOfYear(year, month, day)
	decl := solarDeclination(doy)
	latR := degToRad(lat)

	// Hour angle at an altitude of -0.833 degrees, accounting for
	// refraction and the solar disk radius.
	cosHA := (math.Sin(degToRad(-0.833)) - math.Sin(latR)*math.Sin(decl)) /
		(math.Cos(latR) * math.Cos(decl))
	if cosHA < -1 || cosHA > 1 {
		if kind == Sunrise {
			return NoSunrise
		}
		return NoSunset
	}
	haHours := radToDeg(math.Acos(cosHA)) / 15

	noonUTC := 12 - lng/15 - equationOfTime(doy)/60

	utcHours := noonUTC - haHours
	if kind == Sunset {
		utcHours = noonUTC + haHours
	}

	noonInstant := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(noonUTC * float64(time.Hour)))
	localHours := utcHours + float64(UTCOffsetHours(noonInstant))
	for localHours < 0 {
		localHours += 24
	}
	for localHours >= 24 {
		localHours -= 24
	}

	return formatClock12(localHours)
}

// formatClock12 renders fractional hours-of-day as a 12-hour clock
// string, rounding to the nearest minute and carrying a 60-minute
// rollover into the hour. Hour 0 displays as 12.
func formatClock12(hours float64) string {
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		m = 0
		h++
	}
	if h >= 24 {
		h -= 24
	}

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}
