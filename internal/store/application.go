package store

import (
	"context"
	"database/sql"

	"github.com/internhub/internhub-api/internal/domain"
)

// ApplicationStore defines the interface for internship application persistence.
type ApplicationStore interface {
	// Create saves a new application.
	// Returns ErrApplicationExists if the user already applied for the
	// internship; the (user_id, internship_id) unique constraint makes the
	// check atomic with the insert.
	// Returns ErrInvalidEntity if the referenced user or internship is absent.
	Create(ctx context.Context, application *domain.Application) error

	// GetAll retrieves every application, newest first.
	GetAll(ctx context.Context) ([]*domain.Application, error)

	// GetByID retrieves an application by its unique ID.
	// Returns ErrApplicationNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Application, error)

	// GetByUserID retrieves all applications submitted by the given user.
	// Returns an empty slice when the user has none.
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Application, error)

	// Update overwrites the mutable fields (university, degree program,
	// resume, LinkedIn profile, status) of an existing application.
	// Returns ErrApplicationNotFound if the id is absent.
	Update(ctx context.Context, application *domain.Application) error

	// Delete removes an application by ID.
	// Returns ErrApplicationNotFound if the id is absent.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new ApplicationStore bound to the provided transaction.
	WithTx(tx *sql.Tx) ApplicationStore
}
