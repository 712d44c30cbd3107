package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/internal/service/foodlog"
)

// foodlogService defines the minimal interface needed by EntriesHandler.
type foodlogService interface {
	Log(ctx context.Context, input foodlog.LogInput) (*domain.FoodLogEntry, error)
	Analyze(ctx context.Context, input foodlog.AnalyzeInput) (*domain.FoodEstimate, error)
	LogAnalyzed(ctx context.Context, input foodlog.AnalyzeInput) (*domain.FoodLogEntry, error)
	Duplicate(ctx context.Context, entryID uuid.UUID) (*domain.FoodLogEntry, error)
	Delete(ctx context.Context, entryID uuid.UUID) error
	ListByDate(ctx context.Context, date domain.Date) ([]domain.FoodLogEntry, error)
}

// EntriesHandler serves food log REST endpoints.
type EntriesHandler struct {
	svc foodlogService
	log *slog.Logger
}

// NewEntriesHandler creates an EntriesHandler.
func NewEntriesHandler(svc foodlogService, logger *slog.Logger) *EntriesHandler {
	return &EntriesHandler{svc: svc, log: logger.With("handler", "entries")}
}

type logEntryRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
}

type analyzeRequest struct {
	Description string `json:"description"`
	ImageBase64 string `json:"imageBase64"`
	// Log persists the analyzed estimate immediately instead of only
	// returning it for confirmation.
	Log bool `json:"log"`
}

type entryResponse struct {
	ID          string  `json:"id"`
	EntryDate   string  `json:"entryDate"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	CreatedAt   string  `json:"createdAt"`
}

type estimateResponse struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

// Log handles POST /v1/entries.
func (h *EntriesHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req logEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Log(r.Context(), foodlog.LogInput{
		Name:        req.Name,
		Description: req.Description,
		Calories:    req.Calories,
		Protein:     req.Protein,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Analyze handles POST /v1/entries/analyze.
func (h *EntriesHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := foodlog.AnalyzeInput{
		Description: req.Description,
		ImageBase64: req.ImageBase64,
	}

	if req.Log {
		entry, err := h.svc.LogAnalyzed(r.Context(), input)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toEntryResponse(entry))
		return
	}

	estimate, err := h.svc.Analyze(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, estimateResponse{
		Name:     estimate.Name,
		Calories: estimate.Calories,
		Protein:  estimate.Protein,
	})
}

// Duplicate handles POST /v1/entries/{id}/duplicate.
func (h *EntriesHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	entry, err := h.svc.Duplicate(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Delete handles DELETE /v1/entries/{id}.
func (h *EntriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /v1/entries?date=YYYY-MM-DD.
// Without a date it returns the current app-date's entries.
func (h *EntriesHandler) List(w http.ResponseWriter, r *http.Request) {
	var date domain.Date
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}
		date = parsed
	}

	entries, err := h.svc.ListByDate(r.Context(), date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	responses := make([]entryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toEntryResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": responses})
}

func toEntryResponse(e *domain.FoodLogEntry) entryResponse {
	return entryResponse{
		ID:          e.ID.String(),
		EntryDate:   e.EntryDate.String(),
		Name:        e.Name,
		Description: e.Description,
		Calories:    e.Calories,
		Protein:     e.Protein,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
