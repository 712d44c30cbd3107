package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFoodLogEntry_DuplicateFor(t *testing.T) {
	original := FoodLogEntry{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		EntryDate:   MustDate("2024-01-10"),
		Name:        "Chicken bowl",
		Description: "grilled chicken, rice, vegetables",
		Calories:    640,
		Protein:     48.5,
		CreatedAt:   time.Date(2024, 1, 10, 19, 0, 0, 0, time.UTC),
	}

	now := time.Date(2024, 1, 16, 13, 0, 0, 0, time.UTC)
	today := MustDate("2024-01-16")
	dup := original.DuplicateFor(today, now)

	if dup.ID == original.ID {
		t.Error("duplicate must get a fresh ID")
	}
	if dup.EntryDate != today {
		t.Errorf("EntryDate = %s, want %s", dup.EntryDate, today)
	}
	if !dup.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", dup.CreatedAt, now)
	}
	if dup.UserID != original.UserID || dup.Name != original.Name ||
		dup.Description != original.Description ||
		dup.Calories != original.Calories || dup.Protein != original.Protein {
		t.Errorf("field values must carry over, got %+v", dup)
	}
}
