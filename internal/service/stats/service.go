package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/pkg/ctxutil"
)

// entryRepo defines the food log access needed by the stats service.
// GetByDateRange is the one range fetch per weekly computation; the service
// never issues more than a single call for one week.
type entryRepo interface {
	GetByDateRange(ctx context.Context, userID uuid.UUID, from, to domain.Date) (map[domain.Date][]domain.FoodLogEntry, error)
	ListByUserAndDate(ctx context.Context, userID uuid.UUID, date domain.Date) ([]domain.FoodLogEntry, error)
}

// settingsRepo defines the goal settings access needed by the stats service.
type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.GoalSettings, error)
}

// Service computes weekly and daily stats for the authenticated user.
// Stateless apart from its collaborators: safe to call concurrently.
type Service struct {
	log      *slog.Logger
	entries  entryRepo
	settings settingsRepo
	now      func() time.Time
}

// NewService creates a new stats service instance.
func NewService(logger *slog.Logger, entries entryRepo, settings settingsRepo) *Service {
	return &Service{
		log:      logger.With("service", "stats"),
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

// DayReport is a DayAggregate decorated with adherence tiers.
type DayReport struct {
	domain.DayAggregate
	CalorieTier domain.Tier
	ProteinTier domain.Tier
}

// WeekReport is the weekly stats payload served to clients: the raw
// WeeklyStats plus window metadata, per-day tiers, and tiers for the averages.
type WeekReport struct {
	WeekStart  domain.Date
	WeekEnd    domain.Date
	Label      string
	Days       []DayReport
	Averages   domain.Averages
	Deficit    domain.Deficit
	DaysLogged int

	AvgCalorieTier domain.Tier
	AvgProteinTier domain.Tier

	Settings       domain.GoalSettings
	HasNextWeek    bool
	Today          domain.Date
}

// WeeklyStats computes the WeekReport for the week containing anchor.
// A zero anchor means the current week in the user's timezone.
// Returns ErrUnauthorized without a user in context, and a validation error
// when anchor's week lies beyond the current one. Fetch failures propagate
// unwrapped apart from the operation prefix; no partial report is returned.
func (s *Service) WeeklyStats(ctx context.Context, anchor domain.Date) (*WeekReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.goalSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats.WeeklyStats: %w", err)
	}

	today := AppDate(s.now().In(ParseTimezone(settings.Timezone)))
	if anchor.IsZero() {
		anchor = today
	}
	weekStart := WeekStart(anchor)
	if weekStart.After(WeekStart(today)) {
		return nil, domain.NewValidationError("anchor", "week is in the future")
	}
	weekEnd := WeekEnd(weekStart)

	entriesByDate, err := s.entries.GetByDateRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("stats.WeeklyStats: %w", err)
	}

	raw := ComputeWeeklyStats(weekStart, entriesByDate, settings.MaintenanceCalories, today)

	report := &WeekReport{
		WeekStart:      weekStart,
		WeekEnd:        weekEnd,
		Label:          WeekRangeLabel(weekStart),
		Days:           s.decorateDays(raw.Days, *settings),
		Averages:       raw.Averages,
		Deficit:        raw.Deficit,
		DaysLogged:     raw.DaysLogged,
		AvgCalorieTier: ClassifyCalories(raw.Averages.Calories, settings.TargetCalories, settings.MaintenanceCalories),
		AvgProteinTier: ClassifyProtein(raw.Averages.Protein, settings.TargetProtein),
		Settings:       *settings,
		HasNextWeek:    CanStepForward(weekStart, today),
		Today:          today,
	}

	s.log.DebugContext(ctx, "weekly stats computed",
		slog.String("user_id", userID.String()),
		slog.String("week_start", weekStart.String()),
		slog.Int("days_logged", raw.DaysLogged),
	)
	return report, nil
}

// DailyTotals computes one day's aggregate and tier pair for the totals widget.
func (s *Service) DailyTotals(ctx context.Context, date domain.Date) (*DayReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.goalSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats.DailyTotals: %w", err)
	}

	if date.IsZero() {
		date = AppDate(s.now().In(ParseTimezone(settings.Timezone)))
	}

	entries, err := s.entries.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("stats.DailyTotals: %w", err)
	}

	agg := AggregateDay(date, entries)
	agg.Protein = RoundProtein(agg.Protein)
	return &DayReport{
		DayAggregate: agg,
		CalorieTier:  ClassifyCalories(agg.Calories, settings.TargetCalories, settings.MaintenanceCalories),
		ProteinTier:  ClassifyProtein(agg.Protein, settings.TargetProtein),
	}, nil
}

// goalSettings loads the user's settings, substituting defaults when the
// user has never configured goals.
func (s *Service) goalSettings(ctx context.Context, userID uuid.UUID) (*domain.GoalSettings, error) {
	settings, err := s.settings.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		defaults := domain.DefaultGoalSettings(userID)
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get goal settings: %w", err)
	}
	return settings, nil
}

func (s *Service) decorateDays(days []domain.DayAggregate, settings domain.GoalSettings) []DayReport {
	reports := make([]DayReport, 0, len(days))
	for _, day := range days {
		day.Protein = RoundProtein(day.Protein)
		reports = append(reports, DayReport{
			DayAggregate: day,
			CalorieTier:  ClassifyCalories(day.Calories, settings.TargetCalories, settings.MaintenanceCalories),
			ProteinTier:  ClassifyProtein(day.Protein, settings.TargetProtein),
		})
	}
	return reports
}
