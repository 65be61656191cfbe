package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/platform/logger"
	"github.com/internhub/internhub-api/internal/store"
)

// PostgresFeedbackStore implements the store.FeedbackStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFeedbackStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFeedbackStore creates a new PostgreSQL implementation of the
// FeedbackStore interface.
func NewPostgresFeedbackStore(db store.DBTX, logger *slog.Logger) *PostgresFeedbackStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFeedbackStore{
		db:     db,
		logger: logger.With(slog.String("component", "feedback_store")),
	}
}

// Ensure PostgresFeedbackStore implements store.FeedbackStore interface
var _ store.FeedbackStore = (*PostgresFeedbackStore)(nil)

// Create implements store.FeedbackStore.Create
func (s *PostgresFeedbackStore) Create(ctx context.Context, feedback *domain.Feedback) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := feedback.Validate(); err != nil {
		log.Warn("feedback validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	now := time.Now().UTC()
	if feedback.Date.IsZero() {
		feedback.Date = now
	}
	feedback.CreatedAt = now

	query := `
		INSERT INTO feedbacks (user_id, feedback_text, date, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		feedback.UserID,
		feedback.Text,
		feedback.Date,
		feedback.CreatedAt,
	).Scan(&feedback.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during feedback creation",
				slog.Int64("user_id", feedback.UserID))
			return MapError(err)
		}
		log.Error("failed to create feedback",
			slog.String("error", err.Error()),
			slog.Int64("user_id", feedback.UserID))
		return err
	}

	log.Info("feedback created successfully",
		slog.Int64("feedback_id", feedback.ID),
		slog.Int64("user_id", feedback.UserID))
	return nil
}

// GetAll implements store.FeedbackStore.GetAll
func (s *PostgresFeedbackStore) GetAll(ctx context.Context) ([]*domain.Feedback, error) {
	return s.queryFeedbacks(ctx,
		`SELECT id, user_id, feedback_text, date, created_at FROM feedbacks ORDER BY date DESC`)
}

// GetByID implements store.FeedbackStore.GetByID
func (s *PostgresFeedbackStore) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var feedback domain.Feedback
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, feedback_text, date, created_at FROM feedbacks WHERE id = $1`,
		id,
	).Scan(
		&feedback.ID,
		&feedback.UserID,
		&feedback.Text,
		&feedback.Date,
		&feedback.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("feedback not found", slog.Int64("feedback_id", id))
			return nil, store.ErrFeedbackNotFound
		}
		log.Error("failed to get feedback by ID",
			slog.String("error", err.Error()),
			slog.Int64("feedback_id", id))
		return nil, err
	}

	return &feedback, nil
}

// GetByUserID implements store.FeedbackStore.GetByUserID
func (s *PostgresFeedbackStore) GetByUserID(ctx context.Context, userID int64) ([]*domain.Feedback, error) {
	return s.queryFeedbacks(ctx,
		`SELECT id, user_id, feedback_text, date, created_at FROM feedbacks
			WHERE user_id = $1 ORDER BY date DESC`, userID)
}

func (s *PostgresFeedbackStore) queryFeedbacks(ctx context.Context, query string, args ...any) ([]*domain.Feedback, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query feedbacks", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	feedbacks := []*domain.Feedback{}
	for rows.Next() {
		var feedback domain.Feedback
		if err := rows.Scan(
			&feedback.ID,
			&feedback.UserID,
			&feedback.Text,
			&feedback.Date,
			&feedback.CreatedAt,
		); err != nil {
			log.Error("failed to scan feedback row", slog.String("error", err.Error()))
			return nil, err
		}
		feedbacks = append(feedbacks, &feedback)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("retrieved feedbacks", slog.Int("count", len(feedbacks)))
	return feedbacks, nil
}

// Update implements store.FeedbackStore.Update
func (s *PostgresFeedbackStore) Update(ctx context.Context, feedback *domain.Feedback) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := feedback.Validate(); err != nil {
		log.Warn("feedback validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("feedback_id", feedback.ID))
		return err
	}

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE feedbacks SET feedback_text = $1 WHERE id = $2`,
		feedback.Text,
		feedback.ID,
	)
	if err != nil {
		log.Error("failed to update feedback",
			slog.String("error", err.Error()),
			slog.Int64("feedback_id", feedback.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrFeedbackNotFound); err != nil {
		log.Debug("feedback not found for update", slog.Int64("feedback_id", feedback.ID))
		return err
	}

	log.Info("feedback updated successfully", slog.Int64("feedback_id", feedback.ID))
	return nil
}

// Delete implements store.FeedbackStore.Delete
func (s *PostgresFeedbackStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete feedback",
			slog.String("error", err.Error()),
			slog.Int64("feedback_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrFeedbackNotFound); err != nil {
		log.Debug("feedback not found for delete", slog.Int64("feedback_id", id))
		return err
	}

	log.Info("feedback deleted successfully", slog.Int64("feedback_id", id))
	return nil
}

// WithTx implements store.FeedbackStore.WithTx
func (s *PostgresFeedbackStore) WithTx(tx *sql.Tx) store.FeedbackStore {
	return &PostgresFeedbackStore{
		db:     tx,
		logger: s.logger,
	}
}
