package domain

import (
	"time"
)

// Internship validation errors. Each unwraps to ErrValidation.
var (
	ErrEmptyTitle          = validationError("title cannot be empty")
	ErrTitleTooLong        = validationError("title cannot exceed 128 characters")
	ErrEmptyCompanyName    = validationError("company name cannot be empty")
	ErrCompanyNameTooLong  = validationError("company name cannot exceed 128 characters")
	ErrEmptyLocation       = validationError("location cannot be empty")
	ErrLocationTooLong     = validationError("location cannot exceed 128 characters")
	ErrInvalidDuration     = validationError("duration must be at least one month or more")
	ErrNegativeStipend     = validationError("stipend must be a non-negative value")
	ErrEmptyDescription    = validationError("description cannot be empty")
	ErrDescriptionTooLong  = validationError("description cannot exceed 1024 characters")
	ErrEmptySkillsRequired = validationError("skills required cannot be empty")
	ErrSkillsTooLong       = validationError("skills required cannot exceed 200 characters")
	ErrInvalidDeadline     = validationError("application deadline format should be yyyy-mm-dd")
)

// Internship is a posted internship opportunity. Company names are unique
// across the table; the database enforces this with a unique constraint.
type Internship struct {
	ID                  int64     `json:"internship_id"`
	Title               string    `json:"title"`
	CompanyName         string    `json:"company_name"`
	Location            string    `json:"location"`
	DurationInMonths    int       `json:"duration_in_months"`
	Stipend             float64   `json:"stipend"`
	Description         string    `json:"description"`
	SkillsRequired      string    `json:"skills_required"`
	ApplicationDeadline string    `json:"application_deadline"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Validate checks if the Internship has valid data.
func (i *Internship) Validate() error {
	if i.Title == "" {
		return ErrEmptyTitle
	}
	if len(i.Title) > 128 {
		return ErrTitleTooLong
	}

	if i.CompanyName == "" {
		return ErrEmptyCompanyName
	}
	if len(i.CompanyName) > 128 {
		return ErrCompanyNameTooLong
	}

	if i.Location == "" {
		return ErrEmptyLocation
	}
	if len(i.Location) > 128 {
		return ErrLocationTooLong
	}

	if i.DurationInMonths < 1 {
		return ErrInvalidDuration
	}

	if i.Stipend < 0 {
		return ErrNegativeStipend
	}

	if i.Description == "" {
		return ErrEmptyDescription
	}
	if len(i.Description) > 1024 {
		return ErrDescriptionTooLong
	}

	if i.SkillsRequired == "" {
		return ErrEmptySkillsRequired
	}
	if len(i.SkillsRequired) > 200 {
		return ErrSkillsTooLong
	}

	if _, err := time.Parse("2006-01-02", i.ApplicationDeadline); err != nil {
		return ErrInvalidDeadline
	}

	return nil
}
