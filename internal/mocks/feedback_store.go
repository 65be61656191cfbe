package mocks

import (
	"context"
	"database/sql"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/store"
)

// MockFeedbackStore implements store.FeedbackStore for testing
type MockFeedbackStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, feedback *domain.Feedback) error
	GetAllFn      func(ctx context.Context) ([]*domain.Feedback, error)
	GetByIDFn     func(ctx context.Context, id int64) (*domain.Feedback, error)
	GetByUserIDFn func(ctx context.Context, userID int64) ([]*domain.Feedback, error)
	UpdateFn      func(ctx context.Context, feedback *domain.Feedback) error
	DeleteFn      func(ctx context.Context, id int64) error

	// Data for default implementation
	Feedbacks map[int64]*domain.Feedback
	LastID    int64
}

// NewMockFeedbackStore creates a new mock store with initialized defaults
func NewMockFeedbackStore() *MockFeedbackStore {
	return &MockFeedbackStore{
		Feedbacks: make(map[int64]*domain.Feedback),
	}
}

// Create implements the FeedbackStore interface
func (m *MockFeedbackStore) Create(ctx context.Context, feedback *domain.Feedback) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, feedback)
	}

	m.LastID++
	feedback.ID = m.LastID
	m.Feedbacks[feedback.ID] = feedback
	return nil
}

// GetAll implements the FeedbackStore interface
func (m *MockFeedbackStore) GetAll(ctx context.Context) ([]*domain.Feedback, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	feedbacks := make([]*domain.Feedback, 0, len(m.Feedbacks))
	for _, feedback := range m.Feedbacks {
		feedbacks = append(feedbacks, feedback)
	}
	return feedbacks, nil
}

// GetByID implements the FeedbackStore interface
func (m *MockFeedbackStore) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	feedback, exists := m.Feedbacks[id]
	if !exists {
		return nil, store.ErrFeedbackNotFound
	}
	return feedback, nil
}

// GetByUserID implements the FeedbackStore interface
func (m *MockFeedbackStore) GetByUserID(ctx context.Context, userID int64) ([]*domain.Feedback, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}

	feedbacks := make([]*domain.Feedback, 0)
	for _, feedback := range m.Feedbacks {
		if feedback.UserID == userID {
			feedbacks = append(feedbacks, feedback)
		}
	}
	return feedbacks, nil
}

// Update implements the FeedbackStore interface. Like the real store, the
// default implementation validates the full record before touching it.
func (m *MockFeedbackStore) Update(ctx context.Context, feedback *domain.Feedback) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, feedback)
	}

	if err := feedback.Validate(); err != nil {
		return err
	}

	existing, exists := m.Feedbacks[feedback.ID]
	if !exists {
		return store.ErrFeedbackNotFound
	}
	existing.Text = feedback.Text
	return nil
}

// Delete implements the FeedbackStore interface
func (m *MockFeedbackStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Feedbacks[id]; !exists {
		return store.ErrFeedbackNotFound
	}
	delete(m.Feedbacks, id)
	return nil
}

// WithTx implements the FeedbackStore interface
func (m *MockFeedbackStore) WithTx(tx *sql.Tx) store.FeedbackStore {
	return m
}
