package calendar

import (
	"math"
	"time"
)

// synodicMonth is the mean interval between successive new moons, in
// days.
const synodicMonth = 29.53058770576

// newMoonReference is a known new moon instant (2000-01-06 18:14 UTC)
// used as the phase epoch.
var newMoonReference = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// moonScanStep is the sampling interval for the full-moon scan. Real
// full moons are never closer than about 29.3 days, so any step under
// a day cannot skip two crossings in one interval; six hours keeps the
// linear interpolation of the crossing instant within a few minutes.
const moonScanStep = 6 * time.Hour

// moonNames maps month (0-11) to the traditional full moon name.
var moonNames = [12]string{
	"Wolf Moon",
	"Snow Moon",
	"Worm Moon",
	"Pink Moon",
	"Flower Moon",
	"Strawberry Moon",
	"Buck Moon",
	"Sturgeon Moon",
	"Harvest Moon",
	"Hunter's Moon",
	"Beaver Moon",
	"Cold Moon",
}

// supermoonOrdinals is a curated table mapping year to the ordinals
// (1-indexed position among the year's full moons) that are
// supermoons. Supermoon status depends on perigee distance, which the
// phase model cannot produce, so the table is authoritative. Years
// outside 2024-2040 report no supermoons.
var supermoonOrdinals = map[int][]int{
	2024: {8, 9, 10, 11},
	2025: {10, 11, 12},
	2026: {1, 12, 13},
	2027: {1, 2, 12},
	2028: {2, 3},
	2029: {3, 4, 5},
	2030: {4, 5},
	2031: {5, 6, 7},
	2032: {6, 7},
	2033: {7, 8, 9},
	2034: {8, 9},
	2035: {9, 10, 11},
	2036: {10, 11},
	2037: {11, 12},
	2038: {1, 12},
	2039: {1, 2},
	2040: {2, 3},
}

// FullMoon is one full moon whose localized date falls in the target
// year. Ordinal is its 1-indexed position among those moons and is
// stable once computed.
type FullMoon struct {
	Month   int  `json:"month"`
	Day     int  `json:"day"`
	IsSuper bool `json:"isSuper"`
	IsBlue  bool `json:"isBlue"`
	Ordinal int  `json:"ordinal"`
}

// Label returns the display name for the moon: the traditional month
// name with a "Super ", "Blue ", or "Super Blue " prefix as flagged.
func (m FullMoon) Label() string {
	name := moonNames[m.Month]
	switch {
	case m.IsSuper && m.IsBlue:
		return "Super Blue " + name
	case m.IsSuper:
		return "Super " + name
	case m.IsBlue:
		return "Blue " + name
	default:
		return name
	}
}

// moonPhase returns the phase fraction in [0,1) at the given instant,
// where 0.0 is new moon and 0.5 is full moon.
func moonPhase(t time.Time) float64 {
	days := t.Sub(newMoonReference).Hours() / 24
	phase := math.Mod(days/synodicMonth, 1)
	if phase < 0 {
		phase++
	}
	return phase
}

// FullMoons computes every full moon whose local civil date falls in
// the target year, in chronological order, with ordinals 1..len. A
// year holds 12 or 13 full moons depending on cycle alignment.
//
// The scan covers 35 days before the year through 5 days after it, so
// moons whose UTC instant sits in an adjacent year but whose localized
// date is inside the target year are not missed. Each upward crossing
// of phase 0.5 between samples is refined by linear interpolation.
func FullMoons(year int) []FullMoon {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -35)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 5)

	var moons []FullMoon
	prevT := start
	prevPhase := moonPhase(start)

	for t := start.Add(moonScanStep); !t.After(end); t = t.Add(moonScanStep) {
		phase := moonPhase(t)
		if prevPhase < 0.5 && phase >= 0.5 {
			frac := (0.5 - prevPhase) / (phase - prevPhase)
			crossing := prevT.Add(time.Duration(frac * float64(moonScanStep)))
			local := UTCToLocalCivilDate(crossing)
			if local.Year == year {
				moons = append(moons, FullMoon{Month: local.Month, Day: local.Day})
			}
		}
		prevT, prevPhase = t, phase
	}

	super := make(map[int]bool)
	for _, ord := range supermoonOrdinals[year] {
		super[ord] = true
	}

	seenInMonth := make(map[int]int)
	for i := range moons {
		moons[i].Ordinal = i + 1
		moons[i].IsSuper = super[moons[i].Ordinal]
		seenInMonth[moons[i].Month]++
		moons[i].IsBlue = seenInMonth[moons[i].Month] == 2
	}

	return moons
}
