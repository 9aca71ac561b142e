package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"voltlab/internal/config"
	"voltlab/internal/middleware"
)

// NewRouter builds the report server router with the standard middleware
// stack: request IDs, structured logging, panic recovery, metrics, and
// optional rate limiting.
func NewRouter(service ReportServiceInterface, cfg config.ServerConfig, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics())
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit))
	}

	handler := NewReportHandler(service, logger)
	r.Mount("/api", handler.Routes())
	r.Handle("/metrics", promhttp.Handler())

	return r
}
