package handler

import (
	"encoding/json"
	"errors"
	"go-bikeshare/internal/model"
	"go-bikeshare/internal/pipeline"
	"go-bikeshare/internal/store"
	"go-bikeshare/pkg/utils"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// StatsHandler serves analysis results and run history
type StatsHandler struct {
	Runner   *pipeline.Runner
	PageSize int
}

// NewStatsHandler creates a handler backed by runner
func NewStatsHandler(runner *pipeline.Runner, pageSize int) *StatsHandler {
	return &StatsHandler{Runner: runner, PageSize: pageSize}
}

// RowsPage is a window of filtered trip records
type RowsPage struct {
	Criteria model.FilterCriteria `json:"criteria"`
	Total    int                  `json:"total"`
	Offset   int                  `json:"offset"`
	Limit    int                  `json:"limit"`
	Rows     []model.TripRecord   `json:"rows"`
}

// GetStats runs the analysis for the given criteria
// @Summary Compute bikeshare statistics
// @Description Load a city's dataset, filter by month and day and compute time, station, duration and user statistics
// @Tags stats
// @Produce json
// @Param city query string true "City" Enums(chicago, new york city, washington)
// @Param month query string false "Month name or all" default(all)
// @Param day query string false "Day of week or all" default(all)
// @Success 200 {object} model.Report
// @Failure 400 {object} map[string]interface{} "Invalid filter criteria"
// @Failure 422 {object} map[string]interface{} "Dataset could not be parsed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report, _, err := h.Runner.Run(r.Context(), criteria)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// GetRows returns a page of raw filtered rows
// @Summary Inspect raw trip rows
// @Description Return a page of the filtered dataset
// @Tags stats
// @Produce json
// @Param city query string true "City" Enums(chicago, new york city, washington)
// @Param month query string false "Month name or all" default(all)
// @Param day query string false "Day of week or all" default(all)
// @Param offset query int false "Row offset" default(0)
// @Param limit query int false "Page size" default(5)
// @Success 200 {object} RowsPage
// @Failure 400 {object} map[string]interface{} "Invalid filter criteria"
// @Failure 422 {object} map[string]interface{} "Dataset could not be parsed"
// @Router /rows [get]
func (h *StatsHandler) GetRows(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	q := r.URL.Query()
	offset := utils.ParseIntDefault(q.Get("offset"), 0)
	limit := utils.ParseIntDefault(q.Get("limit"), h.PageSize)
	if offset < 0 || limit <= 0 {
		writeError(w, http.StatusBadRequest, errors.New("offset must be >= 0 and limit > 0"))
		return
	}

	table, err := h.Runner.Loader.Load(r.Context(), criteria.City, criteria.Month, criteria.Day)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, RowsPage{
		Criteria: criteria,
		Total:    table.Len(),
		Offset:   offset,
		Limit:    limit,
		Rows:     table.Page(offset, limit),
	})
}

// ListRuns retrieves the run history
// @Summary List runs
// @Description Get all analysis runs with their status
// @Tags runs
// @Produce json
// @Success 200 {array} model.RunSummary
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func (h *StatsHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

// GetRun retrieves one run
// @Summary Get run
// @Description Retrieve a run and its stored report
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} model.RunDetail
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func (h *StatsHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := pathParam(r.URL.Path, "/api/v1/runs/", "")
	if !ok {
		writeError(w, http.StatusBadRequest, errors.New("run ID is required"))
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// GetRunErrors retrieves errors for a run
// @Summary Get run errors
// @Description Retrieve the errors recorded for a run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run errors"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/errors [get]
func (h *StatsHandler) GetRunErrors(w http.ResponseWriter, r *http.Request) {
	runID, ok := pathParam(r.URL.Path, "/api/v1/runs/", "/errors")
	if !ok {
		writeError(w, http.StatusBadRequest, errors.New("run ID is required"))
		return
	}

	runErrors, err := store.GetRunErrors(runID)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"run_id": runID,
		"errors": runErrors,
		"count":  len(runErrors),
	})
}

// ------------------- Helpers -------------------

func criteriaFromQuery(r *http.Request) (model.FilterCriteria, error) {
	q := r.URL.Query()
	return model.NewFilterCriteria(q.Get("city"), q.Get("month"), q.Get("day"))
}

// pathParam extracts the single segment between prefix and suffix
func pathParam(path, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return "", false
	}
	id := path[len(prefix) : len(path)-len(suffix)]
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func statusFor(err error) int {
	var formatErr *model.DataFormatError
	switch {
	case errors.Is(err, model.ErrInvalidFilter), errors.Is(err, model.ErrUnknownCity):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.As(err, &formatErr), errors.Is(err, model.ErrMissingColumn):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// writeJSON marshals v before writing the header so an encoding
// failure still reaches the client as a 500
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("failed to encode response")
		body, _ = json.Marshal(map[string]interface{}{"error": "failed to encode response"})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logrus.WithError(err).Warn("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		logrus.WithError(err).Error("request failed")
	}
	writeJSON(w, status, map[string]interface{}{"error": err.Error()})
}
