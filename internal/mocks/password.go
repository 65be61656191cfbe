package mocks

import (
	"errors"

	"github.com/internhub/internhub-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing. The default
// "hash" is a reversible prefix so tests can assert without running bcrypt.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)
	Err    error
}

// Hash implements the PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing. It
// accepts hashes produced by MockPasswordHasher.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
	Err       error
}

// Compare implements the PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.Err != nil {
		return m.Err
	}
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// Interface conformance checks.
var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)
)
