// Package admin implements cross-user analytics for operators.
package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// entryRepo defines the food log repository interface needed by this service.
type entryRepo interface {
	GetByDateRange(ctx context.Context, userID uuid.UUID, from, to domain.Date) (map[domain.Date][]domain.FoodLogEntry, error)
}

// settingsRepo defines the goal-settings repository interface needed by this service.
type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.GoalSettings, error)
}

// Service implements admin analytics operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	entries  entryRepo
	settings settingsRepo
	now      func() time.Time
}

// NewService creates a new admin service instance.
func NewService(logger *slog.Logger, users userRepo, entries entryRepo, settings settingsRepo) *Service {
	return &Service{
		log:      logger.With("service", "admin"),
		users:    users,
		entries:  entries,
		settings: settings,
		now:      time.Now,
	}
}

// WithClock replaces the service's clock. For tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
