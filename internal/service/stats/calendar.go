// Package stats implements the weekly statistics and goal-alignment engine:
// the app-date calendar, week windows, daily aggregation, trailing averages
// with deficit figures, and the adherence classifier used by every surface
// that colors a day.
package stats

import (
	"time"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

// DayCutoffHour is the local hour before which an instant still counts
// toward the previous day. A meal logged at 1 AM belongs to the evening
// it ended, not the morning it technically happened.
const DayCutoffHour = 3

// AppDate maps an instant to the calendar date the app attributes it to.
// Instants in [00:00, 03:00) local time fall on the previous day; everything
// else keeps its own calendar date. The date is taken from t's local
// components and never goes through UTC.
func AppDate(t time.Time) domain.Date {
	if t.Hour() < DayCutoffHour {
		t = t.AddDate(0, 0, -1)
	}
	return domain.DateOf(t)
}

// ParseTimezone parses an IANA timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
