package store

import (
	"context"

	"github.com/internhub/internhub-api/internal/domain"
)

// RoleStore defines the interface for role persistence. Roles are a small
// fixed set seeded at startup; the users table references them by name.
type RoleStore interface {
	// EnsureRoles inserts any of the given roles that do not already exist.
	// The operation is idempotent and safe to run on every startup.
	EnsureRoles(ctx context.Context, roles []domain.Role) error
}
