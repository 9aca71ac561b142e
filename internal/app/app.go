// Package app assembles the report server: configuration, logging,
// the report service, the HTTP router, and graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"voltlab/internal/config"
	"voltlab/internal/infrastructure"
	"voltlab/internal/services"
	transport "voltlab/internal/transport/http"
)

// Application holds the assembled report server
type Application struct {
	Config *config.Config
	Paths  *config.Paths
	Logger *slog.Logger
	Server *http.Server
}

// NewApplication wires up the report server from configuration
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("resolve paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	service := services.NewReportService(paths.DatasetCSV, paths.ChartPNG, logger)
	router := transport.NewRouter(service, cfg.Server, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Application{
		Config: cfg,
		Paths:  paths,
		Logger: logger,
		Server: server,
	}, nil
}

// Run starts the HTTP server and blocks until an interrupt signal or a
// server error, then shuts down gracefully.
func (a *Application) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("report server listening",
			slog.String("addr", a.Server.Addr),
			slog.String("dataset", a.Paths.DatasetCSV))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		a.Logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := infrastructure.CloseLogger(); err != nil {
		return fmt.Errorf("close logger: %w", err)
	}

	a.Logger.Info("report server stopped")
	return nil
}
