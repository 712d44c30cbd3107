package domain

import (
	"time"

	"github.com/google/uuid"
)

// FoodLogEntry is one logged meal. Entries are immutable after creation:
// the only lifecycle operations are duplicate and delete.
type FoodLogEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	EntryDate   Date // app-date the entry counts toward, not CreatedAt's calendar date
	Name        string
	Description string
	Calories    float64
	Protein     float64
	CreatedAt   time.Time
}

// DuplicateFor returns a copy of the entry attributed to entryDate,
// with a fresh ID and creation time. All other fields are carried over.
func (e FoodLogEntry) DuplicateFor(entryDate Date, now time.Time) FoodLogEntry {
	return FoodLogEntry{
		ID:          uuid.New(),
		UserID:      e.UserID,
		EntryDate:   entryDate,
		Name:        e.Name,
		Description: e.Description,
		Calories:    e.Calories,
		Protein:     e.Protein,
		CreatedAt:   now,
	}
}

// FoodEstimate is the AI analyzer's guess for a described or photographed meal.
type FoodEstimate struct {
	Name     string
	Calories float64
	Protein  float64
}
