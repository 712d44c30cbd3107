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

// Log creates a food log entry for the authenticated user. The entry is
// attributed to the user's current app-date (3 AM cutoff in their timezone),
// not to the raw calendar date of the creation instant.
func (s *Service) Log(ctx context.Context, input LogInput) (*domain.FoodLogEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tz, err := s.userTimezone(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("foodlog.Log: %w", err)
	}

	now := s.now()
	entry := domain.FoodLogEntry{
		ID:          uuid.New(),
		UserID:      userID,
		EntryDate:   stats.AppDate(now.In(stats.ParseTimezone(tz))),
		Name:        input.Name,
		Description: input.Description,
		Calories:    input.Calories,
		Protein:     input.Protein,
		CreatedAt:   now.UTC(),
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("foodlog.Log: %w", err)
	}

	s.log.InfoContext(ctx, "entry logged",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.String("entry_date", created.EntryDate.String()),
	)
	return created, nil
}

// Analyze asks the AI estimator for a name and macro estimate without
// persisting anything. The caller confirms the estimate via Log.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (*domain.FoodEstimate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	estimate, err := s.ai.Analyze(ctx, input.Description, input.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("foodlog.Analyze: %w", err)
	}
	return estimate, nil
}

// LogAnalyzed analyzes the meal and logs the resulting estimate in one step.
func (s *Service) LogAnalyzed(ctx context.Context, input AnalyzeInput) (*domain.FoodLogEntry, error) {
	estimate, err := s.Analyze(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.Log(ctx, LogInput{
		Name:        estimate.Name,
		Description: input.Description,
		Calories:    estimate.Calories,
		Protein:     estimate.Protein,
	})
}
