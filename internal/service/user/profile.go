package user

import (
	"context"
	"fmt"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/pkg/ctxutil"
)

// Profile returns the authenticated user's account record.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Profile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Profile: %w", err)
	}
	return u, nil
}
