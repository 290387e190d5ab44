package calendar

import (
	"strconv"
	"strings"
)

// Birthday is one parsed birthday record. BirthYear is nil when the
// input line gave no year.
type Birthday struct {
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	BirthYear *int   `json:"birthYear,omitempty"`
	Name      string `json:"name"`
}

var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthFromAbbrev resolves a case-insensitive 3-letter month prefix to
// a month index (0-11). Returns -1 when the token matches no month.
func monthFromAbbrev(token string) int {
	t := strings.ToLower(token)
	if len(t) < 3 {
		return -1
	}
	for i, name := range monthNames {
		if strings.HasPrefix(name, t[:3]) {
			return i
		}
	}
	return -1
}

// ParseBirthdays parses free-form birthday text, one record per
// non-empty line. Each line is either
//
//	<MonthAbbrev> <Day> <Year> <Name...>
//
// or
//
//	<MonthAbbrev> <Day> <Name...>
//
// with an optional legacy "bday" token in front, which is stripped.
// Parsing is best-effort: lines matching neither grammar are dropped
// without error and never fail the overall update.
func ParseBirthdays(text string) []Birthday {
	var birthdays []Birthday
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) > 0 && strings.EqualFold(fields[0], "bday") {
			fields = fields[1:]
		}
		if len(fields) < 3 {
			continue
		}

		month := monthFromAbbrev(fields[0])
		if month < 0 {
			continue
		}

		day, err := strconv.Atoi(fields[1])
		if err != nil || day < 1 || day > 31 {
			continue
		}

		b := Birthday{Month: month, Day: day}
		rest := fields[2:]
		if year, err := strconv.Atoi(rest[0]); err == nil && len(rest[0]) == 4 {
			if len(rest) < 2 {
				continue
			}
			b.BirthYear = &year
			rest = rest[1:]
		}

		b.Name = strings.Join(rest, " ")
		birthdays = append(birthdays, b)
	}
	return birthdays
}
