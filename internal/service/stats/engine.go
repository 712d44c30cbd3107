package stats

import (
	"math"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

// ComputeWeeklyStats builds the Monday-to-Sunday series and trailing figures
// from a single range fetch. Pure function: no clock, no I/O — the caller
// supplies today's app-date. Dates absent from entriesByDate are empty days.
//
// Averages and deficit cover only "completed" days: strictly before today
// and with non-zero calories. Today is excluded even when it already has
// entries, so a half-logged day never drags the average down. The weekly
// deficit multiplies by the number of counted days, not by 7 — absent days
// carry no signal and must not inflate the figure.
func ComputeWeeklyStats(
	weekStart domain.Date,
	entriesByDate map[domain.Date][]domain.FoodLogEntry,
	maintenanceCalories float64,
	today domain.Date,
) domain.WeeklyStats {
	days := make([]domain.DayAggregate, 0, 7)
	daysLogged := 0
	for i := 0; i < 7; i++ {
		date := weekStart.AddDays(i)
		agg := AggregateDay(date, entriesByDate[date])
		if agg.HasEntries() {
			daysLogged++
		}
		days = append(days, agg)
	}

	var sumCalories, sumProtein float64
	completed := 0
	for _, day := range days {
		if day.Date.Before(today) && day.Calories > 0 {
			completed++
			sumCalories += day.Calories
			sumProtein += day.Protein
		}
	}

	result := domain.WeeklyStats{Days: days, DaysLogged: daysLogged}
	if completed == 0 {
		return result
	}

	result.Averages = domain.Averages{
		Calories: math.Round(sumCalories / float64(completed)),
		Protein:  math.Round(sumProtein / float64(completed)),
	}
	daily := result.Averages.Calories - maintenanceCalories
	result.Deficit = domain.Deficit{
		Daily:  daily,
		Weekly: daily * float64(completed),
	}
	return result
}
