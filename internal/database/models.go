// Package database provides database access for the almanac API.
package database

import (
	"time"

	"github.com/almanac-dev/almanac/internal/calendar"
)

// Profile is a saved calendar configuration. It mirrors the persisted
// shape consumed by the rendering host: the five category flags plus
// the raw birthday text, which is parsed on use rather than on save so
// a bad edit can never make a profile unloadable.
type Profile struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	FederalHolidays    bool      `json:"federalHolidays"`
	Observances        bool      `json:"observances"`
	SunriseSunset      bool      `json:"sunriseSunset"`
	FullMoons          bool      `json:"fullMoons"`
	EquinoxesSolstices bool      `json:"equinoxesSolstices"`
	BirthdayText       string    `json:"birthdayText"`
	Lat                float64   `json:"lat"`
	Lng                float64   `json:"lng"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultProfileName is the profile seeded by migration and used when
// a request names none.
const DefaultProfileName = "default"

// Options converts the stored profile into computation options,
// parsing the birthday text best-effort.
func (p *Profile) Options() calendar.Options {
	return calendar.Options{
		FederalHolidays:    p.FederalHolidays,
		Observances:        p.Observances,
		SunriseSunset:      p.SunriseSunset,
		FullMoons:          p.FullMoons,
		EquinoxesSolstices: p.EquinoxesSolstices,
		Birthdays:          calendar.ParseBirthdays(p.BirthdayText),
	}
}
