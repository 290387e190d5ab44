package api

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/almanac-dev/almanac/internal/calendar"
)

// ICSProductID identifies this generator in exported calendars.
const ICSProductID = "-//almanac//calendar export//EN"

// WriteICS writes the computed event map as an iCalendar document of
// all-day events, one VEVENT per event, in date order.
func WriteICS(w io.Writer, year int, events calendar.EventMap) error {
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

	var buf strings.Builder
	fmt.Fprintln(&buf, "BEGIN:VCALENDAR")
	fmt.Fprintln(&buf, "VERSION:2.0")
	fmt.Fprintf(&buf, "PRODID:%s\n", ICSProductID)
	fmt.Fprintf(&buf, "X-WR-CALNAME:Almanac %d\n", year)
	fmt.Fprintln(&buf, "CALSCALE:GREGORIAN")

	stamp := time.Now().UTC().Format("20060102T150405Z")
	for _, key := range keys {
		date := time.Date(key.Year, time.Month(key.Month+1), key.Day, 0, 0, 0, 0, time.UTC)
		for i, ev := range events[key] {
			// UID must be stable across exports for calendar updates.
			uid := fmt.Sprintf("%s-%d@almanac", date.Format("20060102"), i)

			fmt.Fprintln(&buf, "BEGIN:VEVENT")
			fmt.Fprintf(&buf, "UID:%s\n", uid)
			fmt.Fprintf(&buf, "DTSTAMP:%s\n", stamp)
			fmt.Fprintf(&buf, "DTSTART;VALUE=DATE:%s\n", date.Format("20060102"))
			fmt.Fprintf(&buf, "DTEND;VALUE=DATE:%s\n", date.AddDate(0, 0, 1).Format("20060102"))
			fmt.Fprintf(&buf, "SUMMARY:%s\n", escapeICSText(ev.Label))
			fmt.Fprintln(&buf, "END:VEVENT")
		}
	}

	fmt.Fprintln(&buf, "END:VCALENDAR")

	_, err := io.WriteString(w, buf.String())
	return err
}

// escapeICSText escapes the characters RFC 5545 requires in text
// values.
func escapeICSText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
