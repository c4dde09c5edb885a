package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wonny/stabrank/internal/chart"
	"github.com/wonny/stabrank/internal/contracts"
	"github.com/wonny/stabrank/pkg/logger"
)

// ErrNoRepository is returned when run history is requested but the
// database is disabled in configuration.
var ErrNoRepository = errors.New("run history requires DB_ENABLED=true")

// RunsHandler serves persisted aggregation runs
// ⭐ SSOT: Run API 핸들러는 이 구조체에서만
type RunsHandler struct {
	repo   contracts.RunRepository // nil when the database is disabled
	logger *logger.Logger
}

// NewRunsHandler creates a new runs handler
func NewRunsHandler(repo contracts.RunRepository, log *logger.Logger) *RunsHandler {
	return &RunsHandler{
		repo:   repo,
		logger: log,
	}
}

// List returns recent runs.
// GET /api/runs?limit=20
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		writeError(w, http.StatusServiceUnavailable, ErrNoRepository)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := h.repo.List(r.Context(), limit)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(runs),
		"runs":  runs,
	})
}

// Get returns a single run.
// GET /api/runs/{id}
func (h *RunsHandler) Get(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// Chart renders a run's summary as an SVG error-bar chart.
// GET /api/runs/{id}/chart.svg
func (h *RunsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}

	svg := chart.RenderSVG(chart.FromSummary(&run.Summary))
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(svg))
}

// loadRun resolves the {id} path variable and fetches the run
func (h *RunsHandler) loadRun(w http.ResponseWriter, r *http.Request) (*contracts.RankRun, bool) {
	if h.repo == nil {
		writeError(w, http.StatusServiceUnavailable, ErrNoRepository)
		return nil, false
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid run id"))
		return nil, false
	}

	run, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err)
		return nil, false
	}
	return run, true
}
