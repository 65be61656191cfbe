package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/internhub/internhub-api/internal/domain"
)

// noQueryDB fails the test if any database method is reached. It backs tests
// that assert validation rejects a record before the store touches the
// database.
type noQueryDB struct {
	t *testing.T
}

func (db *noQueryDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	db.t.Errorf("unexpected ExecContext: %s", query)
	return nil, sql.ErrConnDone
}

func (db *noQueryDB) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	db.t.Errorf("unexpected PrepareContext: %s", query)
	return nil, sql.ErrConnDone
}

func (db *noQueryDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	db.t.Errorf("unexpected QueryContext: %s", query)
	return nil, sql.ErrConnDone
}

func (db *noQueryDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	db.t.Errorf("unexpected QueryRowContext: %s", query)
	return nil
}

func TestPostgresFeedbackStore_Update_ValidatesBeforeQuerying(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		feedback *domain.Feedback
		wantErr  error
	}{
		{
			name:     "missing user id",
			feedback: &domain.Feedback{ID: 1, Text: "Great platform."},
			wantErr:  domain.ErrInvalidUserID,
		},
		{
			name:     "empty text",
			feedback: &domain.Feedback{ID: 1, UserID: 7},
			wantErr:  domain.ErrEmptyFeedbackText,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewPostgresFeedbackStore(&noQueryDB{t: t}, slog.Default())

			err := store.Update(context.Background(), tt.feedback)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPostgresFeedbackStore_Create_ValidatesBeforeQuerying(t *testing.T) {
	t.Parallel()

	store := NewPostgresFeedbackStore(&noQueryDB{t: t}, slog.Default())

	err := store.Create(context.Background(), &domain.Feedback{Text: "Great platform."})
	assert.ErrorIs(t, err, domain.ErrInvalidUserID)
}
