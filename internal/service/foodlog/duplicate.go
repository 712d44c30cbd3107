package foodlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/internal/service/stats"
	"github.com/macrolog/macrolog-backend/pkg/ctxutil"
)

// Duplicate re-logs an existing entry for the user's current app-date:
// all fields carry over, ID and creation time are fresh. Only the owner
// may duplicate an entry. Read and insert run in one transaction so the
// source row cannot vanish between them.
func (s *Service) Duplicate(ctx context.Context, entryID uuid.UUID) (*domain.FoodLogEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tz, err := s.userTimezone(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("foodlog.Duplicate: %w", err)
	}

	now := s.now()
	today := stats.AppDate(now.In(stats.ParseTimezone(tz)))

	var created *domain.FoodLogEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		original, err := s.entries.GetByID(txCtx, entryID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}
		if original.UserID != userID {
			return domain.ErrForbidden
		}

		dup := original.DuplicateFor(today, now.UTC())
		created, err = s.entries.Create(txCtx, dup)
		if err != nil {
			return fmt.Errorf("create duplicate: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("foodlog.Duplicate: %w", err)
	}

	s.log.InfoContext(ctx, "entry duplicated",
		slog.String("user_id", userID.String()),
		slog.String("source_id", entryID.String()),
		slog.String("entry_id", created.ID.String()),
	)
	return created, nil
}
