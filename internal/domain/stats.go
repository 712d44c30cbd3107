package domain

// DayAggregate is one day's food log reduced to totals. Derived, never persisted.
type DayAggregate struct {
	Date     Date
	Calories float64
	Protein  float64
	Entries  []FoodLogEntry
}

// HasEntries reports whether anything was logged that day,
// regardless of the totals (a zero-calorie entry still counts as logged).
func (a DayAggregate) HasEntries() bool {
	return len(a.Entries) > 0
}

// Averages holds trailing averages over completed, non-empty days.
type Averages struct {
	Calories float64
	Protein  float64
}

// Deficit holds signed energy-balance figures relative to maintenance.
// Negative means under maintenance (a deficit), positive means a surplus.
type Deficit struct {
	Daily  float64
	Weekly float64
}

// WeeklyStats is the stats engine's primary output: a Monday-to-Sunday
// series plus trailing averages and deficit figures. Averages and deficit
// cover only days strictly before the current app-date that have non-zero
// calories; a week with no such days yields zero values.
type WeeklyStats struct {
	Days       []DayAggregate // always 7, Monday..Sunday
	Averages   Averages
	Deficit    Deficit
	DaysLogged int
}
