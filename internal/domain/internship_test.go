package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/internhub/internhub-api/internal/domain"
)

func validInternship() *domain.Internship {
	return &domain.Internship{
		Title:               "Backend Engineering Intern",
		CompanyName:         "Acme",
		Location:            "Remote",
		DurationInMonths:    6,
		Stipend:             1500,
		Description:         "Work on the platform backend.",
		SkillsRequired:      "Go, SQL",
		ApplicationDeadline: "2026-12-31",
	}
}

func TestInternshipValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(i *domain.Internship)
		wantErr error
	}{
		{
			name:    "valid internship",
			mutate:  func(i *domain.Internship) {},
			wantErr: nil,
		},
		{
			name:    "empty title",
			mutate:  func(i *domain.Internship) { i.Title = "" },
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "title too long",
			mutate:  func(i *domain.Internship) { i.Title = strings.Repeat("a", 129) },
			wantErr: domain.ErrTitleTooLong,
		},
		{
			name:    "empty company name",
			mutate:  func(i *domain.Internship) { i.CompanyName = "" },
			wantErr: domain.ErrEmptyCompanyName,
		},
		{
			name:    "company name too long",
			mutate:  func(i *domain.Internship) { i.CompanyName = strings.Repeat("a", 129) },
			wantErr: domain.ErrCompanyNameTooLong,
		},
		{
			name:    "empty location",
			mutate:  func(i *domain.Internship) { i.Location = "" },
			wantErr: domain.ErrEmptyLocation,
		},
		{
			name:    "zero duration",
			mutate:  func(i *domain.Internship) { i.DurationInMonths = 0 },
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "negative stipend",
			mutate:  func(i *domain.Internship) { i.Stipend = -1 },
			wantErr: domain.ErrNegativeStipend,
		},
		{
			name:    "zero stipend allowed",
			mutate:  func(i *domain.Internship) { i.Stipend = 0 },
			wantErr: nil,
		},
		{
			name:    "empty description",
			mutate:  func(i *domain.Internship) { i.Description = "" },
			wantErr: domain.ErrEmptyDescription,
		},
		{
			name:    "description too long",
			mutate:  func(i *domain.Internship) { i.Description = strings.Repeat("a", 1025) },
			wantErr: domain.ErrDescriptionTooLong,
		},
		{
			name:    "empty skills",
			mutate:  func(i *domain.Internship) { i.SkillsRequired = "" },
			wantErr: domain.ErrEmptySkillsRequired,
		},
		{
			name:    "skills too long",
			mutate:  func(i *domain.Internship) { i.SkillsRequired = strings.Repeat("a", 201) },
			wantErr: domain.ErrSkillsTooLong,
		},
		{
			name:    "malformed deadline",
			mutate:  func(i *domain.Internship) { i.ApplicationDeadline = "31-12-2026" },
			wantErr: domain.ErrInvalidDeadline,
		},
		{
			name:    "empty deadline",
			mutate:  func(i *domain.Internship) { i.ApplicationDeadline = "" },
			wantErr: domain.ErrInvalidDeadline,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			internship := validInternship()
			tt.mutate(internship)

			err := internship.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
