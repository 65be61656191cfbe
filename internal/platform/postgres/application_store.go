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

// PostgresApplicationStore implements the store.ApplicationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresApplicationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresApplicationStore creates a new PostgreSQL implementation of the
// ApplicationStore interface.
func NewPostgresApplicationStore(db store.DBTX, logger *slog.Logger) *PostgresApplicationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresApplicationStore{
		db:     db,
		logger: logger.With(slog.String("component", "application_store")),
	}
}

// Ensure PostgresApplicationStore implements store.ApplicationStore interface
var _ store.ApplicationStore = (*PostgresApplicationStore)(nil)

const applicationColumns = `id, user_id, internship_id, university_name, degree_program,
	resume, linkedin_profile, status, application_date, created_at, updated_at`

// Create implements store.ApplicationStore.Create
// The one-application-per-(user, internship) rule is enforced by the unique
// constraint on (user_id, internship_id); the insert either succeeds or
// reports the duplicate atomically.
func (s *PostgresApplicationStore) Create(ctx context.Context, application *domain.Application) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := application.Validate(); err != nil {
		log.Warn("application validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	now := time.Now().UTC()
	if application.ApplicationDate.IsZero() {
		application.ApplicationDate = now
	}
	application.CreatedAt = now
	application.UpdatedAt = now

	query := `
		INSERT INTO internship_applications (user_id, internship_id, university_name,
			degree_program, resume, linkedin_profile, status, application_date,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		application.UserID,
		application.InternshipID,
		application.UniversityName,
		application.DegreeProgram,
		application.Resume,
		application.LinkedInProfile,
		application.Status,
		application.ApplicationDate,
		application.CreatedAt,
		application.UpdatedAt,
	).Scan(&application.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate application",
				slog.Int64("user_id", application.UserID),
				slog.Int64("internship_id", application.InternshipID))
			return MapUniqueViolation(err, store.ErrApplicationExists)
		}
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during application creation",
				slog.Int64("user_id", application.UserID),
				slog.Int64("internship_id", application.InternshipID))
			return MapError(err)
		}
		log.Error("failed to create application",
			slog.String("error", err.Error()),
			slog.Int64("user_id", application.UserID),
			slog.Int64("internship_id", application.InternshipID))
		return err
	}

	log.Info("application created successfully",
		slog.Int64("application_id", application.ID),
		slog.Int64("user_id", application.UserID),
		slog.Int64("internship_id", application.InternshipID))
	return nil
}

// GetAll implements store.ApplicationStore.GetAll
func (s *PostgresApplicationStore) GetAll(ctx context.Context) ([]*domain.Application, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + applicationColumns + ` FROM internship_applications ORDER BY application_date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query applications", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	applications := []*domain.Application{}
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			log.Error("failed to scan application row", slog.String("error", err.Error()))
			return nil, err
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("retrieved applications", slog.Int("count", len(applications)))
	return applications, nil
}

// GetByID implements store.ApplicationStore.GetByID
func (s *PostgresApplicationStore) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + applicationColumns + ` FROM internship_applications WHERE id = $1`

	application, err := scanApplication(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("application not found", slog.Int64("application_id", id))
			return nil, store.ErrApplicationNotFound
		}
		log.Error("failed to get application by ID",
			slog.String("error", err.Error()),
			slog.Int64("application_id", id))
		return nil, err
	}

	return application, nil
}

// GetByUserID implements store.ApplicationStore.GetByUserID
// Returns an empty slice for users with no applications; the service layer
// decides whether that is a not-found condition.
func (s *PostgresApplicationStore) GetByUserID(ctx context.Context, userID int64) ([]*domain.Application, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + applicationColumns + ` FROM internship_applications
		WHERE user_id = $1 ORDER BY application_date DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query applications by user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	applications := []*domain.Application{}
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			log.Error("failed to scan application row", slog.String("error", err.Error()))
			return nil, err
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("retrieved applications for user",
		slog.Int64("user_id", userID),
		slog.Int("count", len(applications)))
	return applications, nil
}

// Update implements store.ApplicationStore.Update
// Only the mutable fields are written; user id, internship id, and the
// application date stay as they were at creation.
func (s *PostgresApplicationStore) Update(ctx context.Context, application *domain.Application) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := application.Validate(); err != nil {
		log.Warn("application validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("application_id", application.ID))
		return err
	}

	application.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE internship_applications
		SET university_name = $1, degree_program = $2, resume = $3,
			linkedin_profile = $4, status = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		application.UniversityName,
		application.DegreeProgram,
		application.Resume,
		application.LinkedInProfile,
		application.Status,
		application.UpdatedAt,
		application.ID,
	)

	if err != nil {
		log.Error("failed to update application",
			slog.String("error", err.Error()),
			slog.Int64("application_id", application.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrApplicationNotFound); err != nil {
		log.Debug("application not found for update",
			slog.Int64("application_id", application.ID))
		return err
	}

	log.Info("application updated successfully",
		slog.Int64("application_id", application.ID))
	return nil
}

// Delete implements store.ApplicationStore.Delete
func (s *PostgresApplicationStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM internship_applications WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete application",
			slog.String("error", err.Error()),
			slog.Int64("application_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrApplicationNotFound); err != nil {
		log.Debug("application not found for delete", slog.Int64("application_id", id))
		return err
	}

	log.Info("application deleted successfully", slog.Int64("application_id", id))
	return nil
}

// WithTx implements store.ApplicationStore.WithTx
func (s *PostgresApplicationStore) WithTx(tx *sql.Tx) store.ApplicationStore {
	return &PostgresApplicationStore{
		db:     tx,
		logger: s.logger,
	}
}

func scanApplication(row scanner) (*domain.Application, error) {
	var application domain.Application
	var linkedIn sql.NullString
	err := row.Scan(
		&application.ID,
		&application.UserID,
		&application.InternshipID,
		&application.UniversityName,
		&application.DegreeProgram,
		&application.Resume,
		&linkedIn,
		&application.Status,
		&application.ApplicationDate,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	application.LinkedInProfile = linkedIn.String
	return &application, nil
}
