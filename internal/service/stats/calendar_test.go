package stats

import (
	"testing"
	"time"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

func TestAppDate(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{
			name:    "02:59:59 counts toward previous day",
			instant: time.Date(2024, 1, 16, 2, 59, 59, 0, time.UTC),
			want:    "2024-01-15",
		},
		{
			name:    "03:00:00 is the current day",
			instant: time.Date(2024, 1, 16, 3, 0, 0, 0, time.UTC),
			want:    "2024-01-16",
		},
		{
			name:    "midnight counts toward previous day",
			instant: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			want:    "2024-01-15",
		},
		{
			name:    "noon is the current day",
			instant: time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC),
			want:    "2024-01-16",
		},
		{
			name:    "cutoff crosses a year boundary",
			instant: time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC),
			want:    "2023-12-31",
		},
		{
			name:    "cutoff crosses a month boundary",
			instant: time.Date(2024, 3, 1, 1, 30, 0, 0, time.UTC),
			want:    "2024-02-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppDate(tt.instant)
			if got.String() != tt.want {
				t.Errorf("AppDate(%v) = %s, want %s", tt.instant, got, tt.want)
			}
		})
	}
}

// The rule reads the instant's own wall clock, so the same UTC moment can land
// on different app-dates in different timezones. A user in Los Angeles at
// 18:30 local must get their local date, not the UTC one.
func TestAppDate_UsesLocalComponents(t *testing.T) {
	losAngeles := time.FixedZone("PST", -8*3600)
	// 2024-01-17 02:30 UTC == 2024-01-16 18:30 in PST.
	instant := time.Date(2024, 1, 17, 2, 30, 0, 0, time.UTC).In(losAngeles)

	got := AppDate(instant)
	want := domain.MustDate("2024-01-16")
	if got != want {
		t.Errorf("AppDate = %s, want %s", got, want)
	}
}

func TestParseTimezone(t *testing.T) {
	if loc := ParseTimezone("Europe/Berlin"); loc.String() != "Europe/Berlin" {
		t.Errorf("ParseTimezone(Europe/Berlin) = %s", loc)
	}
	if loc := ParseTimezone("Not/AZone"); loc != time.UTC {
		t.Errorf("invalid timezone should fall back to UTC, got %s", loc)
	}
	if loc := ParseTimezone(""); loc != time.UTC {
		t.Errorf("empty timezone should fall back to UTC, got %s", loc)
	}
}
