package foodlog

import (
	"context"
	"fmt"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/internal/service/stats"
	"github.com/macrolog/macrolog-backend/pkg/ctxutil"
)

// ListByDate returns the authenticated user's entries for one app-date,
// ordered by creation time. A zero date means the current app-date.
func (s *Service) ListByDate(ctx context.Context, date domain.Date) ([]domain.FoodLogEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if date.IsZero() {
		tz, err := s.userTimezone(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("foodlog.ListByDate: %w", err)
		}
		date = stats.AppDate(s.now().In(stats.ParseTimezone(tz)))
	}

	entries, err := s.entries.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("foodlog.ListByDate: %w", err)
	}
	return entries, nil
}
