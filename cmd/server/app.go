package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/internhub/internhub-api/internal/config"
	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/platform/postgres"
	"github.com/internhub/internhub-api/internal/service"
	"github.com/internhub/internhub-api/internal/service/auth"
	"github.com/internhub/internhub-api/internal/store"
)

// application holds the shared application dependencies so wiring happens in
// one place and cleanup runs in one place on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore        store.UserStore
	internshipStore  store.InternshipStore
	applicationStore store.ApplicationStore
	feedbackStore    store.FeedbackStore

	// Services
	jwtService         auth.JWTService
	authService        *service.AuthService
	internshipService  *service.InternshipService
	applicationService *service.ApplicationService
	feedbackService    *service.FeedbackService
}

// newApplication creates an application instance with all dependencies
// initialized from the given configuration, logger, and database handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.internshipStore = postgres.NewPostgresInternshipStore(db, logger)
	app.applicationStore = postgres.NewPostgresApplicationStore(db, logger)
	app.feedbackStore = postgres.NewPostgresFeedbackStore(db, logger)

	// Auth primitives
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	verifier := auth.NewBcryptVerifier()

	// Services
	app.authService = service.NewAuthService(
		app.userStore,
		app.jwtService,
		hasher,
		verifier,
		cfg.Auth,
		logger,
	)
	app.internshipService = service.NewInternshipService(app.internshipStore, logger)
	app.applicationService = service.NewApplicationService(app.applicationStore, logger)
	app.feedbackService = service.NewFeedbackService(app.feedbackStore, logger)

	return app, nil
}

// seedRoles makes sure the fixed role set exists before any registration
// can reference it. The seed runs in a single transaction so a partial role
// set never becomes visible.
func (app *application) seedRoles(ctx context.Context) error {
	roles := []domain.Role{domain.RoleAdmin, domain.RoleUser}
	err := store.RunInTransaction(ctx, app.db, func(ctx context.Context, tx *sql.Tx) error {
		return postgres.NewPostgresRoleStore(tx, app.logger).EnsureRoles(ctx, roles)
	})
	if err != nil {
		return err
	}
	app.logger.Info("Roles seeded", "roles", len(roles))
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
