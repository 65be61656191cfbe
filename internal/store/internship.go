package store

import (
	"context"
	"database/sql"

	"github.com/internhub/internhub-api/internal/domain"
)

// InternshipStore defines the interface for internship data persistence.
type InternshipStore interface {
	// Create saves a new internship.
	// Returns ErrCompanyExists if an internship with the same company name
	// already exists; uniqueness is enforced by the database constraint, so
	// concurrent creates cannot both succeed.
	Create(ctx context.Context, internship *domain.Internship) error

	// GetAll retrieves every internship, newest first.
	GetAll(ctx context.Context) ([]*domain.Internship, error)

	// GetByID retrieves an internship by its unique ID.
	// Returns ErrInternshipNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Internship, error)

	// Update overwrites all mutable fields of an existing internship.
	// Returns ErrInternshipNotFound if the id is absent and ErrCompanyExists
	// if the new company name collides with another internship.
	Update(ctx context.Context, internship *domain.Internship) error

	// Delete removes an internship by ID.
	// Returns ErrInternshipNotFound if the id is absent and ErrInternshipInUse
	// if existing applications still reference the internship.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new InternshipStore bound to the provided transaction.
	WithTx(tx *sql.Tx) InternshipStore
}
