package service

import (
	"context"
	"log/slog"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/platform/logger"
	"github.com/internhub/internhub-api/internal/store"
)

// InternshipService provides CRUD operations over internship postings.
// The company-name uniqueness rule lives in the store's unique constraint;
// this layer translates inputs and keeps immutable fields immutable.
type InternshipService struct {
	internships store.InternshipStore
	logger      *slog.Logger
}

// NewInternshipService creates an InternshipService.
func NewInternshipService(internships store.InternshipStore, log *slog.Logger) *InternshipService {
	if log == nil {
		log = slog.Default()
	}
	return &InternshipService{
		internships: internships,
		logger:      log.With(slog.String("component", "internship_service")),
	}
}

// Add creates a new internship posting.
// Returns store.ErrCompanyExists if the company name is already taken.
func (s *InternshipService) Add(ctx context.Context, internship *domain.Internship) error {
	return s.internships.Create(ctx, internship)
}

// GetAll returns every internship posting.
func (s *InternshipService) GetAll(ctx context.Context) ([]*domain.Internship, error) {
	return s.internships.GetAll(ctx)
}

// GetByID returns a single internship posting.
// Returns store.ErrInternshipNotFound when the id is absent.
func (s *InternshipService) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	return s.internships.GetByID(ctx, id)
}

// Update overwrites every mutable field of an existing internship.
// Returns store.ErrInternshipNotFound when the id is absent.
func (s *InternshipService) Update(ctx context.Context, id int64, internship *domain.Internship) error {
	internship.ID = id
	return s.internships.Update(ctx, internship)
}

// Delete removes an internship posting.
// Returns store.ErrInternshipNotFound when the id is absent and
// store.ErrInternshipInUse when applications still reference it.
func (s *InternshipService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.internships.Delete(ctx, id); err != nil {
		return err
	}

	log.Info("internship deleted", slog.Int64("internship_id", id))
	return nil
}
