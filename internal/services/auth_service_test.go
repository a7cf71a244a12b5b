package services_test

import (
	"context"
	"testing"

	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/repository"
	"github.com/skillhub/skillhub-api/internal/services"
	"github.com/skillhub/skillhub-api/pkg/auth"
	"github.com/skillhub/skillhub-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(userRepo *MockUserStore) *services.AuthService {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := jwt.NewTokenManager("test-secret", "skillhub-test", 1)
	return services.NewAuthService(userRepo, hasher, tokens)
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	mockRepo := new(MockUserStore)
	service := newAuthService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", ctx, "new@example.com", mock.AnythingOfType("string"), models.RoleUser).
		Return(&models.User{ID: 1, Email: "new@example.com", Role: models.RoleUser}, nil).Once()

	user, err := service.Register(ctx, &models.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_Instructor(t *testing.T) {
	mockRepo := new(MockUserStore)
	service := newAuthService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", ctx, "prof@example.com", mock.AnythingOfType("string"), models.RoleInstructor).
		Return(&models.User{ID: 2, Email: "prof@example.com", Role: models.RoleInstructor}, nil).Once()

	user, err := service.Register(ctx, &models.RegisterRequest{
		Email:    "prof@example.com",
		Password: "secret123",
		Role:     models.RoleInstructor,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleInstructor, user.Role)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserStore)
	service := newAuthService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", ctx, "taken@example.com", mock.AnythingOfType("string"), models.RoleUser).
		Return(nil, repository.ErrDuplicateKey).Once()

	user, err := service.Register(ctx, &models.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret123",
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrConflict)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserStore)
	service := newAuthService(mockRepo)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockRepo.On("GetByEmail", ctx, "user@example.com").
		Return(&models.User{ID: 3, Email: "user@example.com", PasswordHash: string(hash), Role: models.RoleUser}, nil).Once()

	token, session, err := service.Login(ctx, &models.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3, session.UserID)
	assert.Equal(t, models.RoleUser, session.Role)

	// The issued token round-trips through validation
	tokens := jwt.NewTokenManager("test-secret", "skillhub-test", 1)
	claims, err := tokens.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserStore)
	service := newAuthService(mockRepo)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockRepo.On("GetByEmail", ctx, "user@example.com").
		Return(&models.User{ID: 3, Email: "user@example.com", PasswordHash: string(hash)}, nil).Once()

	token, session, err := service.Login(ctx, &models.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.Empty(t, token)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserStore)
	service := newAuthService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound).Once()

	token, session, err := service.Login(ctx, &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.Empty(t, token)
	assert.Nil(t, session)
	// Unknown email is indistinguishable from a wrong password
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}
