package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/macrolog/macrolog-backend/internal/auth"
	"github.com/macrolog/macrolog-backend/internal/domain"
)

// AuthResult is what a successful register or login returns.
type AuthResult struct {
	User        *domain.User
	AccessToken string
}

// Register creates a new user with email + password authentication and
// seeds their default goal settings. Returns ErrAlreadyExists if the
// email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	// Email uniqueness is enforced by a DB constraint.
	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		u, err := s.users.Create(txCtx, domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			Username:     input.Username,
			Name:         input.Username,
			PasswordHash: hash,
			Role:         domain.UserRoleUser,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.settings.Upsert(txCtx, domain.DefaultGoalSettings(u.ID)); err != nil {
			return fmt.Errorf("create goal settings: %w", err)
		}

		created = u
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("user.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(created.ID, string(created.Role))
	if err != nil {
		return nil, fmt.Errorf("user.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()))

	return &AuthResult{User: created, AccessToken: token}, nil
}

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("user.Login get user: %w", err)
	}

	if !auth.CheckPassword(u.PasswordHash, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(u.ID, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("user.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", u.ID.String()))

	return &AuthResult{User: u, AccessToken: token}, nil
}
