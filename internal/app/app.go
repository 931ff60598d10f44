// Package app owns the lifecycle of the long-running HTTP deployment.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/code-review-reporter/internal/config"
	"github.com/sevigo/code-review-reporter/internal/server"
)

// App holds the main application components.
type App struct {
	cfg    *config.Config
	server *server.Server
	logger *slog.Logger
}

// NewApp sets up the application with all its dependencies.
func NewApp(cfg *config.Config, srv *server.Server, logger *slog.Logger) *App {
	logger.Info("review reporter initialized",
		"provider", cfg.AI.Provider,
		"model", cfg.AI.Model,
		"bucket", cfg.Storage.Bucket,
		"url_mode", cfg.Storage.URLMode)

	return &App{cfg: cfg, server: srv, logger: logger}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting review reporter", "server_port", a.cfg.Server.Port)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop(ctx context.Context) error {
	a.logger.Info("shutting down review reporter")

	if err := a.server.Stop(ctx); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("review reporter stopped successfully")
	return nil
}
