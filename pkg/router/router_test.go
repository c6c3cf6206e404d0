package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMatchWildcardRoute(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"/api/v1/runs/abc", "/api/v1/runs/*", true},
		{"/api/v1/runs/abc/errors", "/api/v1/runs/*/errors", true},
		{"/api/v1/runs/abc/errors", "/api/v1/runs/*", true},
		{"/api/v1/runs", "/api/v1/runs/*", false},
		{"/api/v1/stats/abc", "/api/v1/runs/*", false},
		{"/api/v1/runs/abc/logs", "/api/v1/runs/*/errors", false},
	}
	for _, tt := range tests {
		if got := matchWildcardRoute(tt.path, tt.pattern); got != tt.want {
			t.Errorf("matchWildcardRoute(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}

func TestRouter_Dispatch(t *testing.T) {
	r := New()
	hit := ""
	r.GET("/api/v1/runs", func(w http.ResponseWriter, _ *http.Request) { hit = "list" })
	r.GET("/api/v1/runs/*/errors", func(w http.ResponseWriter, _ *http.Request) { hit = "errors" })
	r.GET("/api/v1/runs/*", func(w http.ResponseWriter, _ *http.Request) { hit = "get" })

	tests := []struct {
		method string
		path   string
		hit    string
		status int
	}{
		{http.MethodGet, "/api/v1/runs", "list", http.StatusOK},
		{http.MethodGet, "/api/v1/runs/42/errors", "errors", http.StatusOK},
		{http.MethodGet, "/api/v1/runs/42", "get", http.StatusOK},
		{http.MethodPost, "/api/v1/runs", "", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/v1/runs/42", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nowhere", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		hit = ""
		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if hit != tt.hit || rec.Code != tt.status {
			t.Errorf("%s %s: hit=%q status=%d, want hit=%q status=%d", tt.method, tt.path, hit, rec.Code, tt.hit, tt.status)
		}
	}
}
