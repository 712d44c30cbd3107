package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestDefaultGoalSettings(t *testing.T) {
	userID := uuid.New()
	s := DefaultGoalSettings(userID)

	if s.UserID != userID {
		t.Errorf("UserID = %s, want %s", s.UserID, userID)
	}
	if s.TargetCalories != 2000 {
		t.Errorf("TargetCalories = %v, want 2000", s.TargetCalories)
	}
	if s.MaintenanceCalories != 2000 {
		t.Errorf("MaintenanceCalories = %v, want 2000", s.MaintenanceCalories)
	}
	if s.TargetProtein != 150 {
		t.Errorf("TargetProtein = %v, want 150", s.TargetProtein)
	}
	if s.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", s.Timezone)
	}
	if s.Mode() != GoalModeMaintain {
		t.Errorf("Mode = %s, want %s", s.Mode(), GoalModeMaintain)
	}
}

func TestGoalSettings_Mode(t *testing.T) {
	tests := []struct {
		target      float64
		maintenance float64
		want        GoalMode
	}{
		{1800, 2200, GoalModeCut},
		{2500, 2200, GoalModeBulk},
		{2200, 2200, GoalModeMaintain},
	}
	for _, tt := range tests {
		s := GoalSettings{TargetCalories: tt.target, MaintenanceCalories: tt.maintenance}
		if got := s.Mode(); got != tt.want {
			t.Errorf("Mode(%v, %v) = %s, want %s", tt.target, tt.maintenance, got, tt.want)
		}
	}
}
