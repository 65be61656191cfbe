package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/mocks"
	"github.com/internhub/internhub-api/internal/service"
	"github.com/internhub/internhub-api/internal/store"
)

func testApplication(userID, internshipID int64) *domain.Application {
	return &domain.Application{
		UserID:          userID,
		InternshipID:    internshipID,
		UniversityName:  "State University",
		DegreeProgram:   "BSc CS",
		Resume:          "resume.pdf",
		Status:          "Pending",
		ApplicationDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestApplicationService_Add(t *testing.T) {
	t.Parallel()

	applications := mocks.NewMockApplicationStore()
	svc := service.NewApplicationService(applications, nil)

	require.NoError(t, svc.Add(context.Background(), testApplication(1, 5)))

	err := svc.Add(context.Background(), testApplication(1, 5))
	assert.ErrorIs(t, err, store.ErrApplicationExists)

	assert.NoError(t, svc.Add(context.Background(), testApplication(1, 6)))
	assert.NoError(t, svc.Add(context.Background(), testApplication(2, 5)))
}

func TestApplicationService_GetByUserID(t *testing.T) {
	t.Parallel()

	t.Run("returns user's applications", func(t *testing.T) {
		t.Parallel()

		applications := mocks.NewMockApplicationStore()
		svc := service.NewApplicationService(applications, nil)

		require.NoError(t, svc.Add(context.Background(), testApplication(1, 5)))
		require.NoError(t, svc.Add(context.Background(), testApplication(2, 5)))

		result, err := svc.GetByUserID(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(1), result[0].UserID)
	})

	t.Run("empty result reported as not found", func(t *testing.T) {
		t.Parallel()

		applications := mocks.NewMockApplicationStore()
		svc := service.NewApplicationService(applications, nil)

		_, err := svc.GetByUserID(context.Background(), 99)
		assert.ErrorIs(t, err, store.ErrApplicationNotFound)
	})
}

func TestApplicationService_Update(t *testing.T) {
	t.Parallel()

	t.Run("preserves immutable fields", func(t *testing.T) {
		t.Parallel()

		applications := mocks.NewMockApplicationStore()
		svc := service.NewApplicationService(applications, nil)

		original := testApplication(1, 5)
		require.NoError(t, svc.Add(context.Background(), original))

		update := &domain.Application{
			UserID:          7, // must be ignored
			InternshipID:    8, // must be ignored
			UniversityName:  "Another University",
			DegreeProgram:   "MSc CS",
			Resume:          "resume-v2.pdf",
			Status:          "Accepted",
			ApplicationDate: time.Now(),
		}
		require.NoError(t, svc.Update(context.Background(), original.ID, update))

		stored := applications.Applications[original.ID]
		assert.Equal(t, int64(1), stored.UserID)
		assert.Equal(t, int64(5), stored.InternshipID)
		assert.Equal(t, original.ApplicationDate, stored.ApplicationDate)
		assert.Equal(t, "Another University", stored.UniversityName)
		assert.Equal(t, "Accepted", stored.Status)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		applications := mocks.NewMockApplicationStore()
		svc := service.NewApplicationService(applications, nil)

		update := testApplication(1, 5)
		err := svc.Update(context.Background(), 99, update)
		assert.ErrorIs(t, err, store.ErrApplicationNotFound)
	})
}

func TestApplicationService_Delete(t *testing.T) {
	t.Parallel()

	applications := mocks.NewMockApplicationStore()
	svc := service.NewApplicationService(applications, nil)

	application := testApplication(1, 5)
	require.NoError(t, svc.Add(context.Background(), application))

	assert.NoError(t, svc.Delete(context.Background(), application.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), application.ID), store.ErrApplicationNotFound)
}
