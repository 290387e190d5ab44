// Command almgen computes a year of almanac events and prints them to
// stdout as text, JSON, or an iCalendar file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/almanac-dev/almanac/internal/api"
	"github.com/almanac-dev/almanac/internal/calendar"
)

func main() {
	year := flag.Int("year", 2025, "Year to compute events for")
	lat := flag.Float64("lat", calendar.DefaultLatitude, "Latitude for sunrise/sunset")
	lng := flag.Float64("lng", calendar.DefaultLongitude, "Longitude for sunrise/sunset")
	format := flag.String("format", "text", "Output format: text, json, ics")

	federal := flag.Bool("federal", true, "Include federal holidays")
	observances := flag.Bool("observances", true, "Include observances")
	sun := flag.Bool("sun", true, "Include sunrise/sunset times")
	moons := flag.Bool("moons", true, "Include full moons")
	seasons := flag.Bool("seasons", true, "Include equinoxes and solstices")
	birthdaysFile := flag.String("birthdays", "", "File of birthday lines, e.g. \"Jun 12 1984 Joe\"")

	flag.Parse()

	if *year < 1 || *year > 9999 {
		fatalf("year %d out of range 1-9999", *year)
	}
	if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		fatalf("lat must be in [-90, 90] and lng in [-180, 180]")
	}

	opts := calendar.Options{
		FederalHolidays:    *federal,
		Observances:        *observances,
		SunriseSunset:      *sun,
		FullMoons:          *moons,
		EquinoxesSolstices: *seasons,
	}

	if *birthdaysFile != "" {
		text, err := os.ReadFile(*birthdaysFile)
		if err != nil {
			fatalf("read birthdays file: %v", err)
		}
		opts.Birthdays = calendar.ParseBirthdays(string(text))
	}

	events := calendar.ComputeEvents(*year, *lat, *lng, opts)

	switch *format {
	case "text":
		printText(events)
	case "json":
		printJSON(events)
	case "ics":
		if err := api.WriteICS(os.Stdout, *year, events); err != nil {
			fatalf("write ics: %v", err)
		}
	default:
		fatalf("unknown format %q; use text, json, or ics", *format)
	}
}

func sortedKeys(events calendar.EventMap) []calendar.DateKey {
	keys := make([]calendar.DateKey, 0, len(events))
	for key := range events {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	})
	return keys
}

func printText(events calendar.EventMap) {
	for _, key := range sortedKeys(events) {
		date := calendar.CivilDate{Year: key.Year, Month: key.Month, Day: key.Day}
		for _, ev := range events[key] {
			fmt.Printf("%s  %s\n", date, ev.Label)
		}
	}
}

func printJSON(events calendar.EventMap) {
	out := make(map[string][]calendar.Event, len(events))
	for key, day := range events {
		date := calendar.CivilDate{Year: key.Year, Month: key.Month, Day: key.Day}
		out[date.String()] = day
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatalf("encode json: %v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "almgen: "+format+"\n", args...)
	os.Exit(1)
}
