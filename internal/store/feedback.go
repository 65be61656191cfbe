package store

import (
	"context"
	"database/sql"

	"github.com/internhub/internhub-api/internal/domain"
)

// FeedbackStore defines the interface for feedback persistence.
type FeedbackStore interface {
	// Create saves a new feedback entry.
	// Returns ErrInvalidEntity if the referenced user does not exist.
	Create(ctx context.Context, feedback *domain.Feedback) error

	// GetAll retrieves every feedback entry, newest first.
	GetAll(ctx context.Context) ([]*domain.Feedback, error)

	// GetByID retrieves a feedback entry by its unique ID.
	// Returns ErrFeedbackNotFound if the id is absent.
	GetByID(ctx context.Context, id int64) (*domain.Feedback, error)

	// GetByUserID retrieves all feedback submitted by the given user.
	// Returns an empty slice when the user has none.
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Feedback, error)

	// Update overwrites the text of an existing feedback entry.
	// Returns ErrFeedbackNotFound if the id is absent.
	Update(ctx context.Context, feedback *domain.Feedback) error

	// Delete removes a feedback entry by ID.
	// Returns ErrFeedbackNotFound if the id is absent.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new FeedbackStore bound to the provided transaction.
	WithTx(tx *sql.Tx) FeedbackStore
}
