package mocks

import (
	"context"
	"database/sql"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/store"
)

// MockApplicationStore implements store.ApplicationStore for testing
type MockApplicationStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, application *domain.Application) error
	GetAllFn      func(ctx context.Context) ([]*domain.Application, error)
	GetByIDFn     func(ctx context.Context, id int64) (*domain.Application, error)
	GetByUserIDFn func(ctx context.Context, userID int64) ([]*domain.Application, error)
	UpdateFn      func(ctx context.Context, application *domain.Application) error
	DeleteFn      func(ctx context.Context, id int64) error

	// Data for default implementation
	Applications map[int64]*domain.Application
	LastID       int64
}

// NewMockApplicationStore creates a new mock store with initialized defaults
func NewMockApplicationStore() *MockApplicationStore {
	return &MockApplicationStore{
		Applications: make(map[int64]*domain.Application),
	}
}

// Create implements the ApplicationStore interface
func (m *MockApplicationStore) Create(ctx context.Context, application *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, application)
	}

	for _, existing := range m.Applications {
		if existing.UserID == application.UserID && existing.InternshipID == application.InternshipID {
			return store.ErrApplicationExists
		}
	}

	m.LastID++
	application.ID = m.LastID
	m.Applications[application.ID] = application
	return nil
}

// GetAll implements the ApplicationStore interface
func (m *MockApplicationStore) GetAll(ctx context.Context) ([]*domain.Application, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	applications := make([]*domain.Application, 0, len(m.Applications))
	for _, application := range m.Applications {
		applications = append(applications, application)
	}
	return applications, nil
}

// GetByID implements the ApplicationStore interface
func (m *MockApplicationStore) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	application, exists := m.Applications[id]
	if !exists {
		return nil, store.ErrApplicationNotFound
	}
	return application, nil
}

// GetByUserID implements the ApplicationStore interface
func (m *MockApplicationStore) GetByUserID(ctx context.Context, userID int64) ([]*domain.Application, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}

	applications := make([]*domain.Application, 0)
	for _, application := range m.Applications {
		if application.UserID == userID {
			applications = append(applications, application)
		}
	}
	return applications, nil
}

// Update implements the ApplicationStore interface
func (m *MockApplicationStore) Update(ctx context.Context, application *domain.Application) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, application)
	}

	if _, exists := m.Applications[application.ID]; !exists {
		return store.ErrApplicationNotFound
	}
	m.Applications[application.ID] = application
	return nil
}

// Delete implements the ApplicationStore interface
func (m *MockApplicationStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Applications[id]; !exists {
		return store.ErrApplicationNotFound
	}
	delete(m.Applications, id)
	return nil
}

// WithTx implements the ApplicationStore interface
func (m *MockApplicationStore) WithTx(tx *sql.Tx) store.ApplicationStore {
	return m
}
