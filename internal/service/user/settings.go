package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/pkg/ctxutil"
)

// Settings returns the authenticated user's goal settings. Users who never
// saved settings get the defaults rather than a not-found error.
func (s *Service) Settings(ctx context.Context) (*domain.GoalSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		defaults := domain.DefaultGoalSettings(userID)
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user.Settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies a partial update to the authenticated user's goal
// settings. Unset fields keep their current value; users without a settings
// row start from the defaults. The read and write share one transaction.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.GoalSettings, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.GoalSettings
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.settings.Get(txCtx, userID)
		if errors.Is(err, domain.ErrNotFound) {
			defaults := domain.DefaultGoalSettings(userID)
			current = &defaults
		} else if err != nil {
			return fmt.Errorf("get current settings: %w", err)
		}

		next := applySettingsChanges(*current, input)

		updated, err = s.settings.Upsert(txCtx, next)
		if err != nil {
			return fmt.Errorf("upsert settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateSettings: %w", err)
	}

	s.log.InfoContext(ctx, "goal settings updated",
		slog.String("user_id", userID.String()),
		slog.String("mode", updated.Mode().String()))

	return updated, nil
}

// applySettingsChanges merges the input changes into current settings.
func applySettingsChanges(current domain.GoalSettings, input UpdateSettingsInput) domain.GoalSettings {
	result := current

	if input.TargetCalories != nil {
		result.TargetCalories = *input.TargetCalories
	}
	if input.MaintenanceCalories != nil {
		result.MaintenanceCalories = *input.MaintenanceCalories
	}
	if input.TargetProtein != nil {
		result.TargetProtein = *input.TargetProtein
	}
	if input.Timezone != nil {
		result.Timezone = *input.Timezone
	}

	return result
}
