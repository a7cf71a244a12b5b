package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/repository"
	"github.com/skillhub/skillhub-api/pkg/auth"
	"github.com/skillhub/skillhub-api/pkg/jwt"
	"github.com/skillhub/skillhub-api/pkg/logger"
	"github.com/skillhub/skillhub-api/pkg/metrics"
	"go.uber.org/zap"
)

// AuthService is the identity gate: registration, credential login and
// session token issuance
type AuthService struct {
	userRepo repository.UserStore
	hasher   *auth.PasswordHasher
	tokens   *jwt.TokenManager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserStore, hasher *auth.PasswordHasher, tokens *jwt.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates a new account. The role defaults to "user" when the
// caller does not supply one; a duplicate email maps to ErrConflict.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidStatus, role)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req.Email, hash, role)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("email already registered: %w", ErrConflict)
		}
		metrics.UserRegistrations.WithLabelValues("error").Inc()
		logger.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.UserRegistrations.WithLabelValues("success").Inc()
	logger.Info("User registered",
		zap.Int("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return user, nil
}

// Login verifies credentials and issues a signed session token. Both an
// unknown email and a wrong password collapse to ErrInvalidCredentials
// so the response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.UserSession, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.UserLogins.WithLabelValues("failure").Inc()
			return "", nil, ErrInvalidCredentials
		}
		logger.Error("Failed to load user for login", zap.Error(err))
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.hasher.Verify(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			metrics.UserLogins.WithLabelValues("failure").Inc()
			logger.Warn("Login rejected", zap.Int("user_id", user.ID))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		logger.Error("Failed to issue session token", zap.Int("user_id", user.ID), zap.Error(err))
		return "", nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	now := time.Now()
	session := &models.UserSession{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.tokens.GetExpirationTime()).Unix(),
	}

	metrics.UserLogins.WithLabelValues("success").Inc()
	logger.Info("User logged in",
		zap.Int("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return token, session, nil
}
