package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/internhub/internhub-api/internal/domain"
)

func TestValidationSentinelsWrapErrValidation(t *testing.T) {
	t.Parallel()

	// Every per-field sentinel must classify as a validation error so the
	// API layer maps it to a client error wherever it surfaces.
	sentinels := []error{
		domain.ErrEmptyEmail,
		domain.ErrInvalidEmailFormat,
		domain.ErrWeakPassword,
		domain.ErrInvalidMobileNumber,
		domain.ErrInvalidRole,
		domain.ErrEmptyCompanyName,
		domain.ErrInvalidDuration,
		domain.ErrInvalidDeadline,
		domain.ErrInvalidUserID,
		domain.ErrInvalidInternshipID,
		domain.ErrEmptyResume,
		domain.ErrEmptyStatus,
		domain.ErrEmptyFeedbackText,
		domain.ErrFeedbackTextTooLong,
	}

	for _, sentinel := range sentinels {
		assert.ErrorIs(t, sentinel, domain.ErrValidation, "sentinel %q", sentinel)
	}
}

func TestValidationSentinelMessages(t *testing.T) {
	t.Parallel()

	// The sentinel text is what clients see; it must not carry a wrapper prefix.
	assert.Equal(t, "user ID is required", domain.ErrInvalidUserID.Error())
	assert.Equal(t, "feedback text cannot be empty", domain.ErrEmptyFeedbackText.Error())
}
