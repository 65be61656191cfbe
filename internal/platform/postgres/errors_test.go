package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/internhub/internhub-api/internal/store"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: "some_constraint"}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"nil error", nil, nil},
		{"no rows maps to not found", sql.ErrNoRows, store.ErrNotFound},
		{"wrapped no rows maps to not found", fmt.Errorf("query: %w", sql.ErrNoRows), store.ErrNotFound},
		{"unique violation maps to duplicate", pgError("23505"), store.ErrDuplicate},
		{"foreign key violation maps to invalid entity", pgError("23503"), store.ErrInvalidEntity},
		{"check violation maps to invalid entity", pgError("23514"), store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mapped := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, mapped)
			} else {
				assert.ErrorIs(t, mapped, tt.wantErr)
			}
		})
	}

	t.Run("unrelated error passes through", func(t *testing.T) {
		t.Parallel()

		err := errors.New("connection reset")
		assert.Equal(t, err, MapError(err))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(pgError("23505")))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", pgError("23505"))))
	assert.False(t, IsUniqueViolation(pgError("23503")))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsForeignKeyViolation(pgError("23503")))
	assert.False(t, IsForeignKeyViolation(pgError("23505")))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestMapUniqueViolation(t *testing.T) {
	t.Parallel()

	t.Run("unique violation becomes the specific error", func(t *testing.T) {
		t.Parallel()

		mapped := MapUniqueViolation(pgError("23505"), store.ErrCompanyExists)
		assert.ErrorIs(t, mapped, store.ErrCompanyExists)
		assert.ErrorIs(t, mapped, store.ErrDuplicate)
	})

	t.Run("other errors pass through unchanged", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		assert.Equal(t, err, MapUniqueViolation(err, store.ErrCompanyExists))
	})
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrInternshipNotFound))
	assert.ErrorIs(t,
		CheckRowsAffected(fakeResult{rows: 0}, store.ErrInternshipNotFound),
		store.ErrInternshipNotFound)
	assert.Error(t, CheckRowsAffected(nil, store.ErrInternshipNotFound))
	assert.Error(t, CheckRowsAffected(fakeResult{err: errors.New("driver error")}, store.ErrInternshipNotFound))
}
