package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/internal/service/stats"
	"github.com/macrolog/macrolog-backend/pkg/ctxutil"
)

// UserWeek is one user's row in the overview: their week grid with
// per-day calorie tiers plus the week-level aggregates.
type UserWeek struct {
	UserID     string
	Username   string
	Email      string
	WeekStart  domain.Date
	DayTiers   [7]domain.Tier
	Averages   domain.Averages
	Deficit    domain.Deficit
	DaysLogged int
	AvgTier    domain.Tier
}

// Overview is the admin analytics result for one week across users.
type Overview struct {
	WeekStart domain.Date
	WeekEnd   domain.Date
	Label     string
	Users     []UserWeek
}

// UserOverview returns the per-user tier grid for the week containing
// anchor (admin only). A zero anchor means the current week. Each user's
// "today" is computed in their own timezone, so a completed day for one
// user can still be in progress for another.
func (s *Service) UserOverview(ctx context.Context, anchor domain.Date, limit, offset int) (*Overview, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if limit <= 0 {
		limit = 50
	}

	if anchor.IsZero() {
		anchor = stats.AppDate(s.now().UTC())
	}
	weekStart := stats.WeekStart(anchor)

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("admin.UserOverview list users: %w", err)
	}

	overview := &Overview{
		WeekStart: weekStart,
		WeekEnd:   stats.WeekEnd(weekStart),
		Label:     stats.WeekRangeLabel(weekStart),
		Users:     make([]UserWeek, 0, len(users)),
	}

	for _, u := range users {
		row, err := s.userWeek(ctx, u, weekStart)
		if err != nil {
			return nil, fmt.Errorf("admin.UserOverview user %s: %w", u.ID, err)
		}
		overview.Users = append(overview.Users, *row)
	}

	s.log.InfoContext(ctx, "admin overview computed",
		slog.String("week_start", weekStart.String()),
		slog.Int("users", len(overview.Users)),
	)
	return overview, nil
}

func (s *Service) userWeek(ctx context.Context, u domain.User, weekStart domain.Date) (*UserWeek, error) {
	settings, err := s.settings.Get(ctx, u.ID)
	if errors.Is(err, domain.ErrNotFound) {
		defaults := domain.DefaultGoalSettings(u.ID)
		settings = &defaults
	} else if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	entriesByDate, err := s.entries.GetByDateRange(ctx, u.ID, weekStart, stats.WeekEnd(weekStart))
	if err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}

	today := stats.AppDate(s.now().In(stats.ParseTimezone(settings.Timezone)))
	week := stats.ComputeWeeklyStats(weekStart, entriesByDate, settings.MaintenanceCalories, today)

	row := &UserWeek{
		UserID:     u.ID.String(),
		Username:   u.Username,
		Email:      u.Email,
		WeekStart:  weekStart,
		Averages:   week.Averages,
		Deficit:    week.Deficit,
		DaysLogged: week.DaysLogged,
		AvgTier:    stats.ClassifyCalories(week.Averages.Calories, settings.TargetCalories, settings.MaintenanceCalories),
	}
	for i, day := range week.Days {
		row.DayTiers[i] = stats.ClassifyCalories(day.Calories, settings.TargetCalories, settings.MaintenanceCalories)
	}
	return row, nil
}
