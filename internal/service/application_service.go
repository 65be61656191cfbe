package service

import (
	"context"
	"log/slog"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/platform/logger"
	"github.com/internhub/internhub-api/internal/store"
)

// ApplicationService provides CRUD operations over internship applications
// and enforces the one-application-per-(user, internship) rule through the
// store's unique constraint.
type ApplicationService struct {
	applications store.ApplicationStore
	logger       *slog.Logger
}

// NewApplicationService creates an ApplicationService.
func NewApplicationService(applications store.ApplicationStore, log *slog.Logger) *ApplicationService {
	if log == nil {
		log = slog.Default()
	}
	return &ApplicationService{
		applications: applications,
		logger:       log.With(slog.String("component", "application_service")),
	}
}

// Add submits a new application.
// Returns store.ErrApplicationExists if the user already applied for the
// internship and store.ErrInvalidEntity if the user or internship is absent.
func (s *ApplicationService) Add(ctx context.Context, application *domain.Application) error {
	return s.applications.Create(ctx, application)
}

// GetAll returns every application.
func (s *ApplicationService) GetAll(ctx context.Context) ([]*domain.Application, error) {
	return s.applications.GetAll(ctx)
}

// GetByUserID returns the applications submitted by a user.
// An empty result set is reported as store.ErrApplicationNotFound rather
// than an empty collection, matching the API's not-found contract.
func (s *ApplicationService) GetByUserID(ctx context.Context, userID int64) ([]*domain.Application, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	applications, err := s.applications.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(applications) == 0 {
		log.Debug("no applications for user", slog.Int64("user_id", userID))
		return nil, store.ErrApplicationNotFound
	}

	return applications, nil
}

// Update overwrites the mutable fields of an existing application.
// The owning user, target internship, and application date cannot change.
// Returns store.ErrApplicationNotFound when the id is absent.
func (s *ApplicationService) Update(ctx context.Context, id int64, application *domain.Application) error {
	existing, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Carry the immutable fields forward so validation sees a full record.
	application.ID = existing.ID
	application.UserID = existing.UserID
	application.InternshipID = existing.InternshipID
	application.ApplicationDate = existing.ApplicationDate

	return s.applications.Update(ctx, application)
}

// Delete removes an application.
// Returns store.ErrApplicationNotFound when the id is absent.
func (s *ApplicationService) Delete(ctx context.Context, id int64) error {
	return s.applications.Delete(ctx, id)
}
