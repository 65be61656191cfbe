package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/mocks"
	"github.com/internhub/internhub-api/internal/service"
	"github.com/internhub/internhub-api/internal/store"
)

func testInternship(companyName string) *domain.Internship {
	return &domain.Internship{
		Title:               "Backend Engineering Intern",
		CompanyName:         companyName,
		Location:            "Remote",
		DurationInMonths:    6,
		Stipend:             1500,
		Description:         "Work on the platform backend.",
		SkillsRequired:      "Go, SQL",
		ApplicationDeadline: "2026-12-31",
	}
}

func TestInternshipService_Add(t *testing.T) {
	t.Parallel()

	internships := mocks.NewMockInternshipStore()
	svc := service.NewInternshipService(internships, nil)

	require.NoError(t, svc.Add(context.Background(), testInternship("Acme")))

	err := svc.Add(context.Background(), testInternship("Acme"))
	assert.ErrorIs(t, err, store.ErrCompanyExists)

	assert.NoError(t, svc.Add(context.Background(), testInternship("Globex")))
}

func TestInternshipService_GetByID(t *testing.T) {
	t.Parallel()

	internships := mocks.NewMockInternshipStore()
	svc := service.NewInternshipService(internships, nil)

	internship := testInternship("Acme")
	require.NoError(t, svc.Add(context.Background(), internship))

	found, err := svc.GetByID(context.Background(), internship.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", found.CompanyName)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrInternshipNotFound)
}

func TestInternshipService_Update(t *testing.T) {
	t.Parallel()

	internships := mocks.NewMockInternshipStore()
	svc := service.NewInternshipService(internships, nil)

	internship := testInternship("Acme")
	require.NoError(t, svc.Add(context.Background(), internship))

	update := testInternship("Acme")
	update.Title = "Platform Engineering Intern"
	require.NoError(t, svc.Update(context.Background(), internship.ID, update))
	assert.Equal(t, "Platform Engineering Intern", internships.Internships[internship.ID].Title)

	err := svc.Update(context.Background(), 99, testInternship("Initech"))
	assert.ErrorIs(t, err, store.ErrInternshipNotFound)
}

func TestInternshipService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("success and not found", func(t *testing.T) {
		t.Parallel()

		internships := mocks.NewMockInternshipStore()
		svc := service.NewInternshipService(internships, nil)

		internship := testInternship("Acme")
		require.NoError(t, svc.Add(context.Background(), internship))

		assert.NoError(t, svc.Delete(context.Background(), internship.ID))
		assert.ErrorIs(t, svc.Delete(context.Background(), internship.ID), store.ErrInternshipNotFound)
	})

	t.Run("blocked by existing applications", func(t *testing.T) {
		t.Parallel()

		internships := mocks.NewMockInternshipStore()
		internships.DeleteFn = func(ctx context.Context, id int64) error {
			return store.ErrInternshipInUse
		}
		svc := service.NewInternshipService(internships, nil)

		err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, store.ErrInternshipInUse)
	})
}
