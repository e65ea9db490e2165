package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskfolio/taskfolio-api/internal/config"
	"github.com/taskfolio/taskfolio-api/internal/platform/postgres"
	"github.com/taskfolio/taskfolio-api/internal/service"
	"github.com/taskfolio/taskfolio-api/internal/service/auth"
	"github.com/taskfolio/taskfolio-api/internal/store"
)

// application bundles the long-lived dependencies shared across the HTTP
// surface: configuration, storage, and the service layer.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService  auth.JWTService
	userService service.UserService
	taskService service.TaskService
}

// newApplication wires the dependency graph: stores over the database
// handle, then services over the stores.
func newApplication(cfg *config.Config, db *sql.DB, log *slog.Logger) (*application, error) {
	userStore := postgres.NewPostgresUserStore(db, log)
	taskStore := postgres.NewPostgresTaskStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher(0)

	userService, err := service.NewUserService(userStore, jwtService, hasher, hasher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	taskService, err := service.NewTaskService(taskStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      log,
		db:          db,
		userStore:   userStore,
		taskStore:   taskStore,
		jwtService:  jwtService,
		userService: userService,
		taskService: taskService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeQuietly(app.db, app.logger)
}
