package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/internal/service/stats"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	WeeklyStats(ctx context.Context, anchor domain.Date) (*stats.WeekReport, error)
	DailyTotals(ctx context.Context, date domain.Date) (*stats.DayReport, error)
}

// StatsHandler serves stats REST endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type weekResponse struct {
	WeekStart  string        `json:"weekStart"`
	WeekEnd    string        `json:"weekEnd"`
	Label      string        `json:"label"`
	Days       []dayResponse `json:"days"`
	Averages   averagesJSON  `json:"averages"`
	Deficit    deficitJSON   `json:"deficit"`
	DaysLogged int           `json:"daysLogged"`

	AvgCalorieTier string `json:"avgCalorieTier"`
	AvgProteinTier string `json:"avgProteinTier"`

	HasNextWeek bool         `json:"hasNextWeek"`
	Today       string       `json:"today"`
	Goals       settingsJSON `json:"goals"`
}

type dayResponse struct {
	Date        string          `json:"date"`
	Calories    float64         `json:"calories"`
	Protein     float64         `json:"protein"`
	Logged      bool            `json:"logged"`
	CalorieTier string          `json:"calorieTier"`
	ProteinTier string          `json:"proteinTier"`
	Entries     []entryResponse `json:"entries,omitempty"`
}

type averagesJSON struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

type deficitJSON struct {
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
}

type settingsJSON struct {
	TargetCalories      float64 `json:"targetCalories"`
	MaintenanceCalories float64 `json:"maintenanceCalories"`
	TargetProtein       float64 `json:"targetProtein"`
	Timezone            string  `json:"timezone"`
	Mode                string  `json:"mode"`
}

// Weekly handles GET /v1/stats/weekly?anchor=YYYY-MM-DD.
// Without an anchor it serves the current week.
func (h *StatsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	anchor, ok := parseDateParam(w, r, "anchor")
	if !ok {
		return
	}

	report, err := h.svc.WeeklyStats(r.Context(), anchor)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWeekResponse(report))
}

// Daily handles GET /v1/stats/daily?date=YYYY-MM-DD.
// Without a date it serves the current app-date.
func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}

	report, err := h.svc.DailyTotals(r.Context(), date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDayResponse(*report, true))
}

func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (domain.Date, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return domain.Date{}, true
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name+", want YYYY-MM-DD")
		return domain.Date{}, false
	}
	return date, true
}

func toWeekResponse(report *stats.WeekReport) weekResponse {
	days := make([]dayResponse, 0, len(report.Days))
	for _, day := range report.Days {
		days = append(days, toDayResponse(day, false))
	}

	return weekResponse{
		WeekStart:      report.WeekStart.String(),
		WeekEnd:        report.WeekEnd.String(),
		Label:          report.Label,
		Days:           days,
		Averages:       averagesJSON{Calories: report.Averages.Calories, Protein: report.Averages.Protein},
		Deficit:        deficitJSON{Daily: report.Deficit.Daily, Weekly: report.Deficit.Weekly},
		DaysLogged:     report.DaysLogged,
		AvgCalorieTier: report.AvgCalorieTier.String(),
		AvgProteinTier: report.AvgProteinTier.String(),
		HasNextWeek:    report.HasNextWeek,
		Today:          report.Today.String(),
		Goals: settingsJSON{
			TargetCalories:      report.Settings.TargetCalories,
			MaintenanceCalories: report.Settings.MaintenanceCalories,
			TargetProtein:       report.Settings.TargetProtein,
			Timezone:            report.Settings.Timezone,
			Mode:                report.Settings.Mode().String(),
		},
	}
}

func toDayResponse(day stats.DayReport, withEntries bool) dayResponse {
	resp := dayResponse{
		Date:        day.Date.String(),
		Calories:    day.Calories,
		Protein:     day.Protein,
		Logged:      day.HasEntries(),
		CalorieTier: day.CalorieTier.String(),
		ProteinTier: day.ProteinTier.String(),
	}
	if withEntries {
		resp.Entries = make([]entryResponse, 0, len(day.Entries))
		for i := range day.Entries {
			resp.Entries = append(resp.Entries, toEntryResponse(&day.Entries[i]))
		}
	}
	return resp
}
