package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/internal/service/user"
)

// settingsService defines the minimal interface needed by SettingsHandler.
type settingsService interface {
	Settings(ctx context.Context) (*domain.GoalSettings, error)
	UpdateSettings(ctx context.Context, input user.UpdateSettingsInput) (*domain.GoalSettings, error)
}

// SettingsHandler serves goal-settings REST endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type updateSettingsRequest struct {
	TargetCalories      *float64 `json:"targetCalories"`
	MaintenanceCalories *float64 `json:"maintenanceCalories"`
	TargetProtein       *float64 `json:"targetProtein"`
	Timezone            *string  `json:"timezone"`
}

// Get handles GET /v1/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// Update handles PATCH /v1/settings. Absent fields are left unchanged.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.svc.UpdateSettings(r.Context(), user.UpdateSettingsInput{
		TargetCalories:      req.TargetCalories,
		MaintenanceCalories: req.MaintenanceCalories,
		TargetProtein:       req.TargetProtein,
		Timezone:            req.Timezone,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

func toSettingsResponse(s *domain.GoalSettings) settingsJSON {
	return settingsJSON{
		TargetCalories:      s.TargetCalories,
		MaintenanceCalories: s.MaintenanceCalories,
		TargetProtein:       s.TargetProtein,
		Timezone:            s.Timezone,
		Mode:                s.Mode().String(),
	}
}
