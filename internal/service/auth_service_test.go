package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/internhub-api/internal/config"
	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/mocks"
	"github.com/internhub/internhub-api/internal/service"
	"github.com/internhub/internhub-api/internal/store"
)

const testAdminSecret = "super-secret-admin-key"

func newTestAuthService(users *mocks.MockUserStore) *service.AuthService {
	return service.NewAuthService(
		users,
		mocks.NewMockJWTService(),
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{},
		config.AuthConfig{AdminSecretKey: testAdminSecret},
		nil,
	)
}

func registrationUser(email string) *domain.User {
	return &domain.User{
		Email:        email,
		Password:     "Abcdef123@",
		Username:     "alice",
		MobileNumber: "9876543210",
		Role:         domain.RoleUser,
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("success hashes password and clears plaintext", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		svc := newTestAuthService(users)

		user := registrationUser("alice@x.com")
		err := svc.Register(context.Background(), user)

		require.NoError(t, err)
		assert.Empty(t, user.Password)
		assert.Equal(t, "hashed:Abcdef123@", user.HashedPassword)
		assert.NotZero(t, user.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		svc := newTestAuthService(users)

		require.NoError(t, svc.Register(context.Background(), registrationUser("alice@x.com")))

		err := svc.Register(context.Background(), registrationUser("alice@x.com"))
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.Len(t, users.Users, 1)
	})

	t.Run("weak password rejected before storage", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		svc := newTestAuthService(users)

		user := registrationUser("alice@x.com")
		user.Password = "weakpass"

		err := svc.Register(context.Background(), user)
		assert.ErrorIs(t, err, domain.ErrWeakPassword)
		assert.Empty(t, users.Users)
	})

	t.Run("admin role requires matching secret key", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		svc := newTestAuthService(users)

		user := registrationUser("admin@x.com")
		user.Role = domain.RoleAdmin
		user.SecretKey = "wrong-key"

		err := svc.Register(context.Background(), user)
		assert.ErrorIs(t, err, service.ErrAdminSecretRequired)
		assert.Empty(t, users.Users)
	})

	t.Run("admin role with correct secret key", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		svc := newTestAuthService(users)

		user := registrationUser("admin@x.com")
		user.Role = domain.RoleAdmin
		user.SecretKey = testAdminSecret

		assert.NoError(t, svc.Register(context.Background(), user))
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	t.Run("success returns token", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		svc := newTestAuthService(users)
		require.NoError(t, svc.Register(context.Background(), registrationUser("alice@x.com")))

		token, err := svc.Login(context.Background(), "alice@x.com", "Abcdef123@")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("unknown email and wrong password return the same error", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		svc := newTestAuthService(users)
		require.NoError(t, svc.Register(context.Background(), registrationUser("alice@x.com")))

		_, unknownErr := svc.Login(context.Background(), "nobody@x.com", "Abcdef123@")
		_, wrongPassErr := svc.Login(context.Background(), "alice@x.com", "WrongPass1@")

		assert.ErrorIs(t, unknownErr, service.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongPassErr, service.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
	})

	t.Run("store failure surfaces unchanged", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			return nil, assert.AnError
		}
		svc := newTestAuthService(users)

		_, err := svc.Login(context.Background(), "alice@x.com", "Abcdef123@")
		assert.ErrorIs(t, err, assert.AnError)
	})
}
