package service

import (
	"context"
	"log/slog"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/store"
)

// FeedbackService provides plain CRUD over user feedback. There are no
// uniqueness or cross-entity rules here beyond the user foreign key.
type FeedbackService struct {
	feedbacks store.FeedbackStore
	logger    *slog.Logger
}

// NewFeedbackService creates a FeedbackService.
func NewFeedbackService(feedbacks store.FeedbackStore, log *slog.Logger) *FeedbackService {
	if log == nil {
		log = slog.Default()
	}
	return &FeedbackService{
		feedbacks: feedbacks,
		logger:    log.With(slog.String("component", "feedback_service")),
	}
}

// Add stores a new feedback entry.
func (s *FeedbackService) Add(ctx context.Context, feedback *domain.Feedback) error {
	return s.feedbacks.Create(ctx, feedback)
}

// GetAll returns every feedback entry.
func (s *FeedbackService) GetAll(ctx context.Context) ([]*domain.Feedback, error) {
	return s.feedbacks.GetAll(ctx)
}

// GetByUserID returns the feedback submitted by a user. Unlike applications,
// an empty result is returned as an empty list.
func (s *FeedbackService) GetByUserID(ctx context.Context, userID int64) ([]*domain.Feedback, error) {
	return s.feedbacks.GetByUserID(ctx, userID)
}

// Update overwrites the text of an existing feedback entry.
// The submitting user and date cannot change.
// Returns store.ErrFeedbackNotFound when the id is absent.
func (s *FeedbackService) Update(ctx context.Context, id int64, feedback *domain.Feedback) error {
	existing, err := s.feedbacks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Carry the immutable fields forward so validation sees a full record.
	feedback.ID = existing.ID
	feedback.UserID = existing.UserID
	feedback.Date = existing.Date
	feedback.CreatedAt = existing.CreatedAt

	return s.feedbacks.Update(ctx, feedback)
}

// Delete removes a feedback entry.
// Returns store.ErrFeedbackNotFound when the id is absent.
func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	return s.feedbacks.Delete(ctx, id)
}
