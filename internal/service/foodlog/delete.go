package foodlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/pkg/ctxutil"
)

// Delete removes an entry. Allowed for the entry's owner or an admin.
func (s *Service) Delete(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("foodlog.Delete: %w", err)
	}
	if entry.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("foodlog.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)
	return nil
}
