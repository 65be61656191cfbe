package mocks

import (
	"context"
	"database/sql"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/store"
)

// MockInternshipStore implements store.InternshipStore for testing
type MockInternshipStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, internship *domain.Internship) error
	GetAllFn  func(ctx context.Context) ([]*domain.Internship, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Internship, error)
	UpdateFn  func(ctx context.Context, internship *domain.Internship) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation
	Internships map[int64]*domain.Internship
	LastID      int64
}

// NewMockInternshipStore creates a new mock store with initialized defaults
func NewMockInternshipStore() *MockInternshipStore {
	return &MockInternshipStore{
		Internships: make(map[int64]*domain.Internship),
	}
}

// Create implements the InternshipStore interface
func (m *MockInternshipStore) Create(ctx context.Context, internship *domain.Internship) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, internship)
	}

	for _, existing := range m.Internships {
		if existing.CompanyName == internship.CompanyName {
			return store.ErrCompanyExists
		}
	}

	m.LastID++
	internship.ID = m.LastID
	m.Internships[internship.ID] = internship
	return nil
}

// GetAll implements the InternshipStore interface
func (m *MockInternshipStore) GetAll(ctx context.Context) ([]*domain.Internship, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	internships := make([]*domain.Internship, 0, len(m.Internships))
	for _, internship := range m.Internships {
		internships = append(internships, internship)
	}
	return internships, nil
}

// GetByID implements the InternshipStore interface
func (m *MockInternshipStore) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	internship, exists := m.Internships[id]
	if !exists {
		return nil, store.ErrInternshipNotFound
	}
	return internship, nil
}

// Update implements the InternshipStore interface
func (m *MockInternshipStore) Update(ctx context.Context, internship *domain.Internship) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, internship)
	}

	if _, exists := m.Internships[internship.ID]; !exists {
		return store.ErrInternshipNotFound
	}
	m.Internships[internship.ID] = internship
	return nil
}

// Delete implements the InternshipStore interface
func (m *MockInternshipStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Internships[id]; !exists {
		return store.ErrInternshipNotFound
	}
	delete(m.Internships, id)
	return nil
}

// WithTx implements the InternshipStore interface
func (m *MockInternshipStore) WithTx(tx *sql.Tx) store.InternshipStore {
	return m
}
