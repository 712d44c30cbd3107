package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

// profileService defines the minimal interface needed by the profile route.
type profileService interface {
	Profile(ctx context.Context) (*domain.User, error)
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Entries  *EntriesHandler
	Stats    *StatsHandler
	Settings *SettingsHandler
	Admin    *AdminHandler
	Health   *HealthHandler

	Profile profileService
	Log     *slog.Logger
}

// NewRouter builds the API route table. Middleware is applied by the
// caller around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /v1/auth/login", h.Auth.Login)

	mux.HandleFunc("POST /v1/entries", h.Entries.Log)
	mux.HandleFunc("POST /v1/entries/analyze", h.Entries.Analyze)
	mux.HandleFunc("POST /v1/entries/{id}/duplicate", h.Entries.Duplicate)
	mux.HandleFunc("DELETE /v1/entries/{id}", h.Entries.Delete)
	mux.HandleFunc("GET /v1/entries", h.Entries.List)

	mux.HandleFunc("GET /v1/stats/weekly", h.Stats.Weekly)
	mux.HandleFunc("GET /v1/stats/daily", h.Stats.Daily)

	mux.HandleFunc("GET /v1/settings", h.Settings.Get)
	mux.HandleFunc("PATCH /v1/settings", h.Settings.Update)

	mux.HandleFunc("GET /v1/me", func(w http.ResponseWriter, r *http.Request) {
		u, err := h.Profile.Profile(r.Context())
		if err != nil {
			handleError(h.Log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, userResponse{
			ID:       u.ID.String(),
			Email:    u.Email,
			Username: u.Username,
			Name:     u.Name,
			Role:     u.Role.String(),
		})
	})

	mux.HandleFunc("GET /v1/admin/overview", h.Admin.Overview)

	return mux
}
