package stats

import (
	"fmt"
	"time"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

// WeekStart returns the Monday on or before d. Weeks start on Monday,
// so a Sunday resolves six days back, not forward.
func WeekStart(d domain.Date) domain.Date {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset = 6 // Sunday
	}
	return d.AddDays(-offset)
}

// WeekEnd returns the Sunday of the week starting at weekStart.
func WeekEnd(weekStart domain.Date) domain.Date {
	return weekStart.AddDays(6)
}

// WeekRangeLabel formats a week as a display range. Same-month weeks render
// as "Jan 2 - 8, 2024", cross-month weeks as "Jan 29 - Feb 4, 2024".
func WeekRangeLabel(weekStart domain.Date) string {
	end := WeekEnd(weekStart)
	startMonth := weekStart.Time().Format("Jan")
	if weekStart.Month == end.Month && weekStart.Year == end.Year {
		return fmt.Sprintf("%s %d - %d, %d", startMonth, weekStart.Day, end.Day, end.Year)
	}
	endMonth := end.Time().Format("Jan")
	return fmt.Sprintf("%s %d - %s %d, %d", startMonth, weekStart.Day, endMonth, end.Day, end.Year)
}

// CanStepForward reports whether navigating one week forward from weekStart
// stays within the week containing today. Stepping into future weeks is not
// allowed; stepping backward always is.
func CanStepForward(weekStart, today domain.Date) bool {
	return !weekStart.AddDays(7).After(WeekStart(today))
}
