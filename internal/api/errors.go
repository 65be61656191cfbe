package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/internhub/internhub-api/internal/api/shared"
	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/service"
	"github.com/internhub/internhub-api/internal/service/auth"
	"github.com/internhub/internhub-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Duplicate conflicts deliberately map to 400 rather than 409: the public
// contract treats "already exists" as a bad request.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicates and other client errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInternshipInUse),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAdminSecretRequired),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the user-facing message for an error.
// These strings are part of the public contract; clients match on them.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrEmailExists):
		return "User already exists"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"

	case errors.Is(err, service.ErrAdminSecretRequired):
		return "Invalid secret key"

	case errors.Is(err, store.ErrCompanyExists):
		return "Company with the same name already exists"

	case errors.Is(err, store.ErrApplicationExists):
		return "User already applied for this internship"

	case errors.Is(err, store.ErrInternshipInUse):
		return "Cannot delete an internship with existing applications"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrInternshipNotFound):
		return "Cannot find any internship"

	case errors.Is(err, store.ErrApplicationNotFound):
		return "Cannot find any internship application"

	case errors.Is(err, store.ErrFeedbackNotFound):
		return "Cannot find any feedback."

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps an error to its status and safe message and writes the
// response. When userMessage is non-empty it overrides the mapped message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	message := userMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError turns a validator error into a short user-facing
// message without echoing raw input back to the client.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "len", "numeric":
		return "invalid format"
	case "oneof":
		return "invalid value"
	case "datetime":
		return "invalid date format"
	default:
		return "validation failed"
	}
}
