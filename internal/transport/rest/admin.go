package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/internal/service/admin"
)

// adminService defines the minimal interface needed by AdminHandler.
type adminService interface {
	UserOverview(ctx context.Context, anchor domain.Date, limit, offset int) (*admin.Overview, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type overviewResponse struct {
	WeekStart string             `json:"weekStart"`
	WeekEnd   string             `json:"weekEnd"`
	Label     string             `json:"label"`
	Users     []userWeekResponse `json:"users"`
}

type userWeekResponse struct {
	UserID     string       `json:"userId"`
	Username   string       `json:"username"`
	Email      string       `json:"email"`
	DayTiers   [7]string    `json:"dayTiers"`
	Averages   averagesJSON `json:"averages"`
	Deficit    deficitJSON  `json:"deficit"`
	DaysLogged int          `json:"daysLogged"`
	AvgTier    string       `json:"avgTier"`
}

// Overview handles GET /v1/admin/overview?anchor=YYYY-MM-DD&limit=&offset=.
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	anchor, ok := parseDateParam(w, r, "anchor")
	if !ok {
		return
	}

	limit := intParam(r, "limit", 50)
	offset := intParam(r, "offset", 0)

	overview, err := h.svc.UserOverview(r.Context(), anchor, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := overviewResponse{
		WeekStart: overview.WeekStart.String(),
		WeekEnd:   overview.WeekEnd.String(),
		Label:     overview.Label,
		Users:     make([]userWeekResponse, 0, len(overview.Users)),
	}
	for _, u := range overview.Users {
		row := userWeekResponse{
			UserID:     u.UserID,
			Username:   u.Username,
			Email:      u.Email,
			Averages:   averagesJSON{Calories: u.Averages.Calories, Protein: u.Averages.Protein},
			Deficit:    deficitJSON{Daily: u.Deficit.Daily, Weekly: u.Deficit.Weekly},
			DaysLogged: u.DaysLogged,
			AvgTier:    u.AvgTier.String(),
		}
		for i, tier := range u.DayTiers {
			row.DayTiers[i] = tier.String()
		}
		resp.Users = append(resp.Users, row)
	}

	writeJSON(w, http.StatusOK, resp)
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
