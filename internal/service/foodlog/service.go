// Package foodlog implements the meal logging flow: create, duplicate,
// delete, list, and AI-assisted analysis of free-text or photographed meals.
package foodlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

// entryRepo defines the food log repository interface needed by this service.
type entryRepo interface {
	Create(ctx context.Context, e domain.FoodLogEntry) (*domain.FoodLogEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FoodLogEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUserAndDate(ctx context.Context, userID uuid.UUID, date domain.Date) ([]domain.FoodLogEntry, error)
}

// settingsRepo provides the user's timezone for app-date assignment.
type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.GoalSettings, error)
}

// analyzer is the AI estimator collaborator: given a description and/or
// image it returns a name and macro estimate. Opaque — its errors propagate.
type analyzer interface {
	Analyze(ctx context.Context, description, imageBase64 string) (*domain.FoodEstimate, error)
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements food log operations.
type Service struct {
	log      *slog.Logger
	entries  entryRepo
	settings settingsRepo
	ai       analyzer
	tx       txManager
	now      func() time.Time
}

// NewService creates a new food log service instance.
func NewService(logger *slog.Logger, entries entryRepo, settings settingsRepo, ai analyzer, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "foodlog"),
		entries:  entries,
		settings: settings,
		ai:       ai,
		tx:       tx,
		now:      time.Now,
	}
}

// WithClock replaces the service's clock. For tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// userTimezone loads the user's configured timezone, defaulting to UTC
// when no settings row exists.
func (s *Service) userTimezone(ctx context.Context, userID uuid.UUID) (string, error) {
	settings, err := s.settings.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultGoalSettings(userID).Timezone, nil
	}
	if err != nil {
		return "", fmt.Errorf("get goal settings: %w", err)
	}
	return settings.Timezone, nil
}
