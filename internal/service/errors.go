package service

import "errors"

// Common service errors.
var (
	// ErrInvalidCredentials is returned by Login for both an unknown email
	// and a wrong password. The two cases are deliberately indistinguishable
	// so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAdminSecretRequired is returned when a registration asks for the
	// Admin role without presenting the configured admin secret key.
	ErrAdminSecretRequired = errors.New("admin registration requires a valid secret key")
)
