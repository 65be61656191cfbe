package mocks

import (
	"context"
	"fmt"

	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// Function fields for customizable behavior
	GenerateTokenFn func(ctx context.Context, user *domain.User) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Data for default implementation
	Token  string
	Claims *auth.Claims
	Err    error
}

// NewMockJWTService creates a new mock with a fixed token
func NewMockJWTService() *MockJWTService {
	return &MockJWTService{
		Token: "test-token",
	}
}

// GenerateToken implements the JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, user *domain.User) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, user)
	}

	if m.Err != nil {
		return "", m.Err
	}
	return fmt.Sprintf("%s-%d", m.Token, user.ID), nil
}

// ValidateToken implements the JWTService interface
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return nil, auth.ErrInvalidToken
}
