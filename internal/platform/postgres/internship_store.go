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

// PostgresInternshipStore implements the store.InternshipStore interface
// using a PostgreSQL database as the storage backend.
type PostgresInternshipStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresInternshipStore creates a new PostgreSQL implementation of the
// InternshipStore interface.
func NewPostgresInternshipStore(db store.DBTX, logger *slog.Logger) *PostgresInternshipStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresInternshipStore{
		db:     db,
		logger: logger.With(slog.String("component", "internship_store")),
	}
}

// Ensure PostgresInternshipStore implements store.InternshipStore interface
var _ store.InternshipStore = (*PostgresInternshipStore)(nil)

const internshipColumns = `id, title, company_name, location, duration_months, stipend,
	description, skills_required, application_deadline, created_at, updated_at`

// Create implements store.InternshipStore.Create
// The company-name uniqueness check rides on the unique constraint, so the
// check and the insert are a single atomic statement.
func (s *PostgresInternshipStore) Create(ctx context.Context, internship *domain.Internship) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := internship.Validate(); err != nil {
		log.Warn("internship validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	now := time.Now().UTC()
	internship.CreatedAt = now
	internship.UpdatedAt = now

	query := `
		INSERT INTO internships (title, company_name, location, duration_months, stipend,
			description, skills_required, application_deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		internship.Title,
		internship.CompanyName,
		internship.Location,
		internship.DurationInMonths,
		internship.Stipend,
		internship.Description,
		internship.SkillsRequired,
		internship.ApplicationDeadline,
		internship.CreatedAt,
		internship.UpdatedAt,
	).Scan(&internship.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate company name during internship creation",
				slog.String("company_name", internship.CompanyName))
			return MapUniqueViolation(err, store.ErrCompanyExists)
		}
		log.Error("failed to create internship",
			slog.String("error", err.Error()),
			slog.String("company_name", internship.CompanyName))
		return MapError(err)
	}

	log.Info("internship created successfully",
		slog.Int64("internship_id", internship.ID),
		slog.String("company_name", internship.CompanyName))
	return nil
}

// GetAll implements store.InternshipStore.GetAll
func (s *PostgresInternshipStore) GetAll(ctx context.Context) ([]*domain.Internship, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + internshipColumns + ` FROM internships ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query internships", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	internships := []*domain.Internship{}
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			log.Error("failed to scan internship row", slog.String("error", err.Error()))
			return nil, err
		}
		internships = append(internships, internship)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("retrieved internships", slog.Int("count", len(internships)))
	return internships, nil
}

// GetByID implements store.InternshipStore.GetByID
func (s *PostgresInternshipStore) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + internshipColumns + ` FROM internships WHERE id = $1`

	internship, err := scanInternship(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("internship not found", slog.Int64("internship_id", id))
			return nil, store.ErrInternshipNotFound
		}
		log.Error("failed to get internship by ID",
			slog.String("error", err.Error()),
			slog.Int64("internship_id", id))
		return nil, err
	}

	return internship, nil
}

// Update implements store.InternshipStore.Update
// All mutable fields are overwritten; a missing id surfaces as
// store.ErrInternshipNotFound via the affected-rows count.
func (s *PostgresInternshipStore) Update(ctx context.Context, internship *domain.Internship) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := internship.Validate(); err != nil {
		log.Warn("internship validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("internship_id", internship.ID))
		return err
	}

	internship.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE internships
		SET title = $1, company_name = $2, location = $3, duration_months = $4,
			stipend = $5, description = $6, skills_required = $7,
			application_deadline = $8, updated_at = $9
		WHERE id = $10
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		internship.Title,
		internship.CompanyName,
		internship.Location,
		internship.DurationInMonths,
		internship.Stipend,
		internship.Description,
		internship.SkillsRequired,
		internship.ApplicationDeadline,
		internship.UpdatedAt,
		internship.ID,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate company name during internship update",
				slog.Int64("internship_id", internship.ID),
				slog.String("company_name", internship.CompanyName))
			return MapUniqueViolation(err, store.ErrCompanyExists)
		}
		log.Error("failed to update internship",
			slog.String("error", err.Error()),
			slog.Int64("internship_id", internship.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrInternshipNotFound); err != nil {
		log.Debug("internship not found for update",
			slog.Int64("internship_id", internship.ID))
		return err
	}

	log.Info("internship updated successfully",
		slog.Int64("internship_id", internship.ID))
	return nil
}

// Delete implements store.InternshipStore.Delete
// The applications table references internships with ON DELETE RESTRICT;
// deleting a posting that still has applications fails with
// store.ErrInternshipInUse rather than orphaning the rows.
func (s *PostgresInternshipStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM internships WHERE id = $1`, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("internship has existing applications, delete blocked",
				slog.Int64("internship_id", id))
			return store.ErrInternshipInUse
		}
		log.Error("failed to delete internship",
			slog.String("error", err.Error()),
			slog.Int64("internship_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrInternshipNotFound); err != nil {
		log.Debug("internship not found for delete", slog.Int64("internship_id", id))
		return err
	}

	log.Info("internship deleted successfully", slog.Int64("internship_id", id))
	return nil
}

// WithTx implements store.InternshipStore.WithTx
func (s *PostgresInternshipStore) WithTx(tx *sql.Tx) store.InternshipStore {
	return &PostgresInternshipStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanner abstracts *sql.Row and *sql.Rows for the scan helpers below.
type scanner interface {
	Scan(dest ...any) error
}

func scanInternship(row scanner) (*domain.Internship, error) {
	var internship domain.Internship
	err := row.Scan(
		&internship.ID,
		&internship.Title,
		&internship.CompanyName,
		&internship.Location,
		&internship.DurationInMonths,
		&internship.Stipend,
		&internship.Description,
		&internship.SkillsRequired,
		&internship.ApplicationDeadline,
		&internship.CreatedAt,
		&internship.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &internship, nil
}
