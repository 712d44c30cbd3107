package stats

import (
	"math"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

// AggregateDay reduces the entries attributed to one date into a DayAggregate.
// Pure: entries are not mutated. Totals keep full precision; display contexts
// round protein via RoundProtein.
func AggregateDay(date domain.Date, entries []domain.FoodLogEntry) domain.DayAggregate {
	agg := domain.DayAggregate{Date: date, Entries: entries}
	for _, e := range entries {
		agg.Calories += e.Calories
		agg.Protein += e.Protein
	}
	return agg
}

// RoundProtein rounds protein grams to one decimal place for display.
func RoundProtein(grams float64) float64 {
	return math.Round(grams*10) / 10
}
