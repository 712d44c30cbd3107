// Package user implements account registration, login, profile access,
// and goal-settings management.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/macrolog/macrolog-backend/internal/config"
	"github.com/macrolog/macrolog-backend/internal/domain"
)

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// settingsRepo defines the goal-settings repository interface needed by this service.
type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.GoalSettings, error)
	Upsert(ctx context.Context, s domain.GoalSettings) (*domain.GoalSettings, error)
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager issues signed access tokens after registration and login.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
}

// Service implements user account and goal-settings operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	settings settingsRepo
	tx       txManager
	jwt      jwtManager
	cfg      config.AuthConfig
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	settings settingsRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		settings: settings,
		tx:       tx,
		jwt:      jwt,
		cfg:      cfg,
	}
}
