package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation or
	// references a row that does not exist (foreign key violation).
	// Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrInternshipNotFound indicates that the requested internship does not exist.
	ErrInternshipNotFound = fmt.Errorf("%w: internship", ErrNotFound)

	// ErrApplicationNotFound indicates that the requested internship
	// application does not exist.
	ErrApplicationNotFound = fmt.Errorf("%w: internship application", ErrNotFound)

	// ErrFeedbackNotFound indicates that the requested feedback does not exist.
	ErrFeedbackNotFound = fmt.Errorf("%w: feedback", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrCompanyExists indicates that an internship with the same company
	// name already exists.
	ErrCompanyExists = fmt.Errorf("%w: company name", ErrDuplicate)

	// ErrApplicationExists indicates that the user has already applied for
	// the internship.
	ErrApplicationExists = fmt.Errorf("%w: application", ErrDuplicate)

	// ErrInternshipInUse indicates that an internship cannot be deleted
	// because existing applications reference it.
	ErrInternshipInUse = errors.New("internship has existing applications")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
