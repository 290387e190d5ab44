package calendar

import (
	"strconv"
	"strings"
	"testing"
)

func TestSeasonalEvents_2024(t *testing.T) {
	events := SeasonalEvents(2024)
	if len(events) != 4 {
		t.Fatalf("SeasonalEvents(2024) returned %d events, want 4", len(events))
	}

	// The 2024 March equinox is ~03:00-04:30 UTC on March 20, which
	// localizes to the evening of March 19.
	want := map[string]CivilDate{
		"Spring Equinox":  {2024, 2, 19},
		"Summer Solstice": {2024, 5, 20},
		"Fall Equinox":    {2024, 8, 22},
		"Winter Solstice": {2024, 11, 21},
	}

	for _, ev := range events {
		wantDate, ok := want[ev.Name]
		if !ok {
			t.Errorf("unexpected seasonal event %q", ev.Name)
			continue
		}
		if ev.Date != wantDate {
			t.Errorf("%s = %v, want %v", ev.Name, ev.Date, wantDate)
		}
	}
}

// parseClock12 extracts the hour (0-23) from a formatted clock string.
func parseClock12(t *testing.T, s string) int {
	t.Helper()
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		t.Fatalf("malformed clock string %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		t.Fatalf("malformed clock string %q: %v", s, err)
	}
	if h == 12 {
		h = 0
	}
	if strings.HasSuffix(s, "PM") {
		h += 12
	}
	return h
}

func TestSunTime_SeattleSolstice(t *testing.T) {
	// Summer solstice at the default reference location. Sunrise is
	// a little after 5 AM local, sunset a little after 9 PM.
	sunrise := SunTime(2024, 5, 20, DefaultLatitude, DefaultLongitude, Sunrise)
	if !strings.HasSuffix(sunrise, "AM") {
		t.Errorf("sunrise = %q, want an AM time", sunrise)
	}
	if h := parseClock12(t, sunrise); h < 4 || h > 6 {
		t.Errorf("sunrise = %q, want hour between 4 and 6 AM", sunrise)
	}

	sunset := SunTime(2024, 5, 20, DefaultLatitude, DefaultLongitude, Sunset)
	if !strings.HasSuffix(sunset, "PM") {
		t.Errorf("sunset = %q, want a PM time", sunset)
	}
	if h := parseClock12(t, sunset); h < 20 || h > 22 {
		t.Errorf("sunset = %q, want hour between 8 and 10 PM", sunset)
	}
}

func TestSunTime_PolarConditions(t *testing.T) {
	// Polar night: no sunrise at 80N in late December.
	if got := SunTime(2024, 11, 21, 80, -122.38, Sunrise); got != NoSunrise {
		t.Errorf("polar night sunrise = %q, want %q", got, NoSunrise)
	}
	if got := SunTime(2024, 11, 21, 80, -122.38, Sunset); got != NoSunset {
		t.Errorf("polar night sunset = %q, want %q", got, NoSunset)
	}

	// Midnight sun: no sunset at 80N in late June.
	if got := SunTime(2024, 5, 20, 80, -122.38, Sunset); got != NoSunset {
		t.Errorf("midnight sun sunset = %q, want %q", got, NoSunset)
	}
}

func TestFormatClock12(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  string
	}{
		{"midnight", 0, "12:00 AM"},
		{"half past midnight", 0.5, "12:30 AM"},
		{"noon", 12, "12:00 PM"},
		{"evening", 21.25, "9:15 PM"},
		{"minute rollover into hour", 10.9999, "11:00 AM"},
		{"rollover across noon", 11.9999, "12:00 PM"},
		{"rollover wraps midnight", 23.9999, "12:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatClock12(tt.hours); got != tt.want {
				t.Errorf("formatClock12(%v) = %q, want %q", tt.hours, got, tt.want)
			}
		})
	}
}

func TestJDEToUTC_UnixEpoch(t *testing.T) {
	got := jdeToUTC(2440587.5)
	if got.Unix() != 0 {
		t.Errorf("jdeToUTC(2440587.5) = %v, want Unix epoch", got)
	}
}
