// Package main implements the entry point for the Taskfolio API server,
// a multi-user task tracker with JWT authentication and per-user task
// ownership.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/taskfolio/taskfolio-api/internal/config"
	"github.com/taskfolio/taskfolio-api/internal/platform/logger"
	"github.com/taskfolio/taskfolio-api/internal/platform/postgres"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("server exited with error", "error", err)
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, applies migrations, and wires the application dependencies.
func initializeApp() (*application, error) {
	// A local .env file is a development convenience; absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("debug", cfg.Server.Debug))

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()
	if err := postgres.RunMigrations(ctx, db, appLogger); err != nil {
		closeQuietly(db, appLogger)
		return nil, err
	}

	app, err := newApplication(cfg, db, appLogger)
	if err != nil {
		closeQuietly(db, appLogger)
		return nil, err
	}

	return app, nil
}
