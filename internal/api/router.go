package api

import (
	"go-bikeshare/internal/api/handler"
	"go-bikeshare/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-bikeshare/docs"
)

func RegisterRoutes(r *router.Router, h *handler.StatsHandler) {
	r.GET("/api/v1/stats", h.GetStats)
	r.GET("/api/v1/rows", h.GetRows)
	r.GET("/api/v1/runs", h.ListRuns)
	// More specific routes first
	r.GET("/api/v1/runs/*/errors", h.GetRunErrors)
	r.GET("/api/v1/runs/*", h.GetRun)

	r.Mount("/swagger/", httpSwagger.WrapHandler)
}
