package domain

import (
	"time"
)

// Application validation errors. Each unwraps to ErrValidation.
var (
	ErrInvalidUserID        = validationError("user ID is required")
	ErrInvalidInternshipID  = validationError("internship ID is required")
	ErrEmptyUniversityName  = validationError("university name cannot be empty")
	ErrUniversityTooLong    = validationError("university name cannot exceed 128 characters")
	ErrEmptyDegreeProgram   = validationError("degree program cannot be empty")
	ErrDegreeProgramTooLong = validationError("degree program cannot exceed 32 characters")
	ErrEmptyResume          = validationError("resume is required")
	ErrLinkedInTooLong      = validationError("linkedin profile cannot exceed 512 characters")
	ErrEmptyStatus          = validationError("application status is required")
	ErrStatusTooLong        = validationError("application status cannot exceed 8 characters")
)

// Application is a user's application to a specific internship.
// At most one application may exist per (UserID, InternshipID) pair; the
// database enforces this with a unique constraint.
//
// ID, UserID, InternshipID, and ApplicationDate are immutable after creation;
// Update only touches the remaining fields.
type Application struct {
	ID              int64     `json:"internship_application_id"`
	UserID          int64     `json:"user_id"`
	InternshipID    int64     `json:"internship_id"`
	UniversityName  string    `json:"university_name"`
	DegreeProgram   string    `json:"degree_program"`
	Resume          string    `json:"resume"` // stored file name, not content
	LinkedInProfile string    `json:"linkedin_profile,omitempty"`
	Status          string    `json:"application_status"`
	ApplicationDate time.Time `json:"application_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Validate checks if the Application has valid data.
func (a *Application) Validate() error {
	if a.UserID <= 0 {
		return ErrInvalidUserID
	}
	if a.InternshipID <= 0 {
		return ErrInvalidInternshipID
	}

	if a.UniversityName == "" {
		return ErrEmptyUniversityName
	}
	if len(a.UniversityName) > 128 {
		return ErrUniversityTooLong
	}

	if a.DegreeProgram == "" {
		return ErrEmptyDegreeProgram
	}
	if len(a.DegreeProgram) > 32 {
		return ErrDegreeProgramTooLong
	}

	if a.Resume == "" {
		return ErrEmptyResume
	}

	if len(a.LinkedInProfile) > 512 {
		return ErrLinkedInTooLong
	}

	if a.Status == "" {
		return ErrEmptyStatus
	}
	if len(a.Status) > 8 {
		return ErrStatusTooLong
	}

	return nil
}
