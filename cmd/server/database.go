package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/taskfolio/taskfolio-api/internal/config"
)

// Startup timeouts for database setup.
const (
	pingTimeout      = 5 * time.Second
	migrationTimeout = 30 * time.Second
)

// setupDatabase establishes a connection to the database and configures the
// connection pool. Returns the database handle if successful, or an error
// if the connection fails.
func setupDatabase(cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db, log)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established")
	return db, nil
}

// closeQuietly closes the database handle, logging rather than returning
// any error. Used on startup failure paths and during shutdown.
func closeQuietly(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Error("failed to close database connection", "error", err)
	}
}
