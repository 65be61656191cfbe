// Package service contains the business logic that sits between the HTTP
// handlers and the persistence layer.
package service

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/internhub/internhub-api/internal/config"
	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/platform/logger"
	"github.com/internhub/internhub-api/internal/service/auth"
	"github.com/internhub/internhub-api/internal/store"
)

// AuthService orchestrates registration and login: duplicate detection,
// password hashing, credential verification, and token issuance.
type AuthService struct {
	users    store.UserStore
	jwt      auth.JWTService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	authCfg  config.AuthConfig
	logger   *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
func NewAuthService(
	users store.UserStore,
	jwt auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	authCfg config.AuthConfig,
	log *slog.Logger,
) *AuthService {
	if log == nil {
		log = slog.Default()
	}
	return &AuthService{
		users:    users,
		jwt:      jwt,
		hasher:   hasher,
		verifier: verifier,
		authCfg:  authCfg,
		logger:   log.With(slog.String("component", "auth_service")),
	}
}

// Register creates a new account with the role carried on the user.
// The password is stored only as a bcrypt hash. A duplicate email surfaces
// as store.ErrEmailExists; registering an Admin requires the configured
// admin secret key.
func (s *AuthService) Register(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return err
	}

	if user.Role == domain.RoleAdmin {
		if subtle.ConstantTimeCompare([]byte(user.SecretKey), []byte(s.authCfg.AdminSecretKey)) != 1 {
			log.Warn("admin registration rejected: bad secret key",
				slog.String("email", user.Email))
			return ErrAdminSecretRequired
		}
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return err
	}
	user.HashedPassword = hashed
	user.Password = "" // plaintext is no longer needed past this point

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)))
	return nil
}

// Login verifies the credentials and issues a signed token.
// Unknown email and wrong password both return ErrInvalidCredentials; the
// bcrypt comparison runs either way so response timing does not reveal
// whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			// Burn a comparison against a dummy hash to keep timing flat.
			_ = s.verifier.Compare(dummyBcryptHash, password)
			return "", ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", slog.String("error", err.Error()))
		return "", err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user)
	if err != nil {
		log.Error("failed to generate token",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return "", err
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	return token, nil
}

// dummyBcryptHash is a valid bcrypt hash of a random string, used to equalize
// login timing when the email is unknown.
const dummyBcryptHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
