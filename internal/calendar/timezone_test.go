package calendar

import (
	"testing"
	"time"
)

func TestIsDST_SpringBoundary(t *testing.T) {
	// DST begins 2024-03-10 at 02:00 local standard time (10:00 UTC).
	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"one minute before transition", time.Date(2024, 3, 10, 9, 59, 0, 0, time.UTC), false},
		{"at transition", time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC), true},
		{"early March", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"late March", time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDST(tt.instant); got != tt.want {
				t.Errorf("IsDST(%v) = %v, want %v", tt.instant, got, tt.want)
			}
		})
	}
}

func TestIsDST_FallBoundary(t *testing.T) {
	// DST ends 2024-11-03 at 02:00 local daylight time (09:00 UTC).
	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"one minute before transition", time.Date(2024, 11, 3, 8, 59, 0, 0, time.UTC), true},
		{"at transition", time.Date(2024, 11, 3, 9, 0, 0, 0, time.UTC), false},
		{"late November", time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDST(tt.instant); got != tt.want {
				t.Errorf("IsDST(%v) = %v, want %v", tt.instant, got, tt.want)
			}
		})
	}
}

func TestIsDST_FixedMonths(t *testing.T) {
	if IsDST(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)) {
		t.Error("IsDST(January) = true, want false")
	}
	if IsDST(time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)) {
		t.Error("IsDST(December) = true, want false")
	}
	if !IsDST(time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)) {
		t.Error("IsDST(July) = false, want true")
	}
}

func TestUTCToLocalCivilDate(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    CivilDate
	}{
		{
			"early UTC morning rolls back a day (standard time)",
			time.Date(2024, 1, 15, 5, 0, 0, 0, time.UTC),
			CivilDate{2024, 0, 14},
		},
		{
			"UTC noon stays same day",
			time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			CivilDate{2024, 0, 15},
		},
		{
			"6:30 UTC during DST is previous day 23:30 local",
			time.Date(2024, 7, 4, 6, 30, 0, 0, time.UTC),
			CivilDate{2024, 6, 3},
		},
		{
			"new year boundary",
			time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC),
			CivilDate{2024, 11, 31},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UTCToLocalCivilDate(tt.instant); got != tt.want {
				t.Errorf("UTCToLocalCivilDate(%v) = %v, want %v", tt.instant, got, tt.want)
			}
		})
	}
}
