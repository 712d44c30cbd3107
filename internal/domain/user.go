package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GoalSettings holds per-user calorie and protein targets.
// TargetCalories relative to MaintenanceCalories defines the goal mode:
// below is cutting, above is bulking, equal is maintaining.
type GoalSettings struct {
	UserID              uuid.UUID
	TargetCalories      float64
	MaintenanceCalories float64
	TargetProtein       float64
	Timezone            string
	UpdatedAt           time.Time
}

// DefaultGoalSettings returns GoalSettings with sensible defaults,
// used whenever a user has not configured goals yet.
func DefaultGoalSettings(userID uuid.UUID) GoalSettings {
	return GoalSettings{
		UserID:              userID,
		TargetCalories:      2000,
		MaintenanceCalories: 2000,
		TargetProtein:       150,
		Timezone:            "UTC",
	}
}

// Mode returns the goal mode implied by target vs maintenance.
func (s GoalSettings) Mode() GoalMode {
	switch {
	case s.TargetCalories < s.MaintenanceCalories:
		return GoalModeCut
	case s.TargetCalories > s.MaintenanceCalories:
		return GoalModeBulk
	default:
		return GoalModeMaintain
	}
}
