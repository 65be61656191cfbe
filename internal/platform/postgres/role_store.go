package postgres

import (
	"context"
	"log/slog"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/platform/logger"
	"github.com/internhub/internhub-api/internal/store"
)

// PostgresRoleStore implements the store.RoleStore interface.
type PostgresRoleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRoleStore creates a new PostgreSQL implementation of the
// RoleStore interface.
func NewPostgresRoleStore(db store.DBTX, logger *slog.Logger) *PostgresRoleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRoleStore{
		db:     db,
		logger: logger.With(slog.String("component", "role_store")),
	}
}

// Ensure PostgresRoleStore implements store.RoleStore interface
var _ store.RoleStore = (*PostgresRoleStore)(nil)

// EnsureRoles implements store.RoleStore.EnsureRoles
// ON CONFLICT DO NOTHING makes the seeding idempotent across restarts and
// concurrent instances.
func (s *PostgresRoleStore) EnsureRoles(ctx context.Context, roles []domain.Role) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, role := range roles {
		_, err := s.db.ExecContext(
			ctx,
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			role,
		)
		if err != nil {
			log.Error("failed to seed role",
				slog.String("error", err.Error()),
				slog.String("role", string(role)))
			return MapError(err)
		}
	}

	log.Info("roles seeded", slog.Int("count", len(roles)))
	return nil
}
