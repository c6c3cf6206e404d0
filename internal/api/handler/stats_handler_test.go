package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go-bikeshare/internal/model"
	"go-bikeshare/internal/pipeline"
	"go-bikeshare/internal/store"
	"go-bikeshare/pkg/router"
)

const tripsCSV = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
2017-01-01 09:07:57,2017-01-01 09:20:53,776,Canal St & Adams St,Clark St & Randolph St,Subscriber,Male,1990.0
2017-01-02 09:30:00,2017-01-02 09:45:00,900,Canal St & Adams St,Clark St & Randolph St,Subscriber,Female,1990.0
2017-03-06 17:10:00,2017-03-06 17:30:00,1200,Streeter Dr & Grand Ave,Lake Shore Dr & Monroe St,Customer,,
`

const brokenCSV = `Start Time,Trip Duration,Start Station,End Station,User Type
not a time,10,A,B,Customer
`

func newTestServer(t *testing.T) *router.Router {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{"chicago.csv": tripsCSV, "washington.csv": brokenCSV} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	if err := store.InitDB(filepath.Join(dir, "runs.db")); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	h := NewStatsHandler(pipeline.NewRunner(pipeline.NewLoader(dir, nil)), 2)
	r := router.New()
	r.GET("/api/v1/stats", h.GetStats)
	r.GET("/api/v1/rows", h.GetRows)
	r.GET("/api/v1/runs", h.ListRuns)
	r.GET("/api/v1/runs/*/errors", h.GetRunErrors)
	r.GET("/api/v1/runs/*", h.GetRun)
	return r
}

func get(t *testing.T, r *router.Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetStats(t *testing.T) {
	r := newTestServer(t)

	rec := get(t, r, "/api/v1/stats?city=Chicago&month=january")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var report model.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.RowCount != 2 || report.Criteria.Day != model.All {
		t.Fatalf("unexpected report %+v", report)
	}
	if len(report.Stations.Trips) != 1 || report.Stations.Trips[0].Count != 2 {
		t.Fatalf("unexpected trips %+v", report.Stations.Trips)
	}

	// the run is now in the history
	rec = get(t, r, "/api/v1/runs/"+report.RunID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for stored run, got %d", rec.Code)
	}
	var run model.RunDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &run); err != nil {
		t.Fatalf("decode run: %v", err)
	}
	if run.Status != model.RunCompleted || run.Report == nil {
		t.Fatalf("unexpected run %+v", run)
	}
}

func TestGetStats_Errors(t *testing.T) {
	r := newTestServer(t)

	tests := []struct {
		target string
		want   int
	}{
		{"/api/v1/stats", http.StatusBadRequest},
		{"/api/v1/stats?city=boston", http.StatusBadRequest},
		{"/api/v1/stats?city=chicago&day=someday", http.StatusBadRequest},
		{"/api/v1/stats?city=washington", http.StatusUnprocessableEntity},
		{"/api/v1/runs/unknown", http.StatusNotFound},
		{"/api/v1/nothing", http.StatusNotFound},
	}
	for _, tt := range tests {
		if rec := get(t, r, tt.target); rec.Code != tt.want {
			t.Fatalf("%s: expected %d, got %d: %s", tt.target, tt.want, rec.Code, rec.Body.String())
		}
	}
}

func TestGetRows(t *testing.T) {
	r := newTestServer(t)

	rec := get(t, r, "/api/v1/rows?city=chicago")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var page RowsPage
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Total != 3 || page.Limit != 2 || len(page.Rows) != 2 {
		t.Fatalf("unexpected page %+v", page)
	}

	rec = get(t, r, "/api/v1/rows?city=chicago&offset=2&limit=5")
	page = RowsPage{}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Rows) != 1 || page.Rows[0].StartStation != "Streeter Dr & Grand Ave" {
		t.Fatalf("unexpected second page %+v", page.Rows)
	}

	if rec := get(t, r, "/api/v1/rows?city=chicago&limit=0"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero limit, got %d", rec.Code)
	}
}

func TestRunHistory(t *testing.T) {
	r := newTestServer(t)

	get(t, r, "/api/v1/stats?city=chicago")
	get(t, r, "/api/v1/stats?city=washington")

	rec := get(t, r, "/api/v1/runs")
	var runs []model.RunSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &runs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	var failedID string
	for _, run := range runs {
		if run.Status == model.RunFailed {
			failedID = run.ID
		}
	}
	if failedID == "" {
		t.Fatalf("expected a failed run in %+v", runs)
	}

	rec = get(t, r, "/api/v1/runs/"+failedID+"/errors")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		RunID string           `json:"run_id"`
		Count int              `json:"count"`
		Errs  []model.RunError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.RunID != failedID || body.Count != 1 {
		t.Fatalf("unexpected errors body %+v", body)
	}
}

func TestPathParam(t *testing.T) {
	tests := []struct {
		path, prefix, suffix string
		want                 string
		ok                   bool
	}{
		{"/api/v1/runs/abc", "/api/v1/runs/", "", "abc", true},
		{"/api/v1/runs/abc/errors", "/api/v1/runs/", "/errors", "abc", true},
		{"/api/v1/runs/", "/api/v1/runs/", "", "", false},
		{"/api/v1/runs/a/b", "/api/v1/runs/", "", "", false},
	}
	for _, tt := range tests {
		got, ok := pathParam(tt.path, tt.prefix, tt.suffix)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("pathParam(%q): got %q %v", tt.path, got, ok)
		}
	}
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, &model.Report{Duration: &model.DurationSummary{TotalSeconds: math.NaN()}})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON error body, got %q", rec.Body.String())
	}
	if body["error"] == "" {
		t.Fatalf("expected error message, got %v", body)
	}
}
