// Package goalsettings implements the GoalSettings repository using PostgreSQL.
package goalsettings

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/macrolog/macrolog-backend/internal/adapter/postgres"
	"github.com/macrolog/macrolog-backend/internal/domain"
)

// Repo provides goal settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new goal settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `
SELECT user_id, target_calories, maintenance_calories, target_protein, timezone, updated_at
FROM user_goal_settings
WHERE user_id = $1`

const upsertSQL = `
INSERT INTO user_goal_settings (user_id, target_calories, maintenance_calories, target_protein, timezone, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (user_id) DO UPDATE SET
    target_calories      = EXCLUDED.target_calories,
    maintenance_calories = EXCLUDED.maintenance_calories,
    target_protein       = EXCLUDED.target_protein,
    timezone             = EXCLUDED.timezone,
    updated_at           = now()
RETURNING user_id, target_calories, maintenance_calories, target_protein, timezone, updated_at`

// Get returns the user's goal settings. Returns ErrNotFound when the user
// has never saved any — callers substitute defaults.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.GoalSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var s domain.GoalSettings
	err := querier.QueryRow(ctx, getSQL, userID).Scan(
		&s.UserID, &s.TargetCalories, &s.MaintenanceCalories,
		&s.TargetProtein, &s.Timezone, &s.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "goal_settings", userID)
	}
	return &s, nil
}

// Upsert writes the user's goal settings, creating the row on first save.
func (r *Repo) Upsert(ctx context.Context, s domain.GoalSettings) (*domain.GoalSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var saved domain.GoalSettings
	err := querier.QueryRow(ctx, upsertSQL,
		s.UserID, s.TargetCalories, s.MaintenanceCalories, s.TargetProtein, s.Timezone,
	).Scan(
		&saved.UserID, &saved.TargetCalories, &saved.MaintenanceCalories,
		&saved.TargetProtein, &saved.Timezone, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "goal_settings", s.UserID)
	}
	return &saved, nil
}
