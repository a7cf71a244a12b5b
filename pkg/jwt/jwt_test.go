package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tm := NewTokenManager("test-secret", "skillhub-test", 1)

	token, err := tm.GenerateToken(42, "user@example.com", "instructor")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "instructor", claims.Role)
	assert.Equal(t, "skillhub-test", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", "skillhub-test", 1)
	other := NewTokenManager("other-secret", "skillhub-test", 1)

	token, err := tm.GenerateToken(1, "user@example.com", "user")
	assert.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", "skillhub-test", 1)

	claims, err := tm.ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetExpirationTime(t *testing.T) {
	tm := NewTokenManager("test-secret", "skillhub-test", 24)
	assert.Equal(t, 24*time.Hour, tm.GetExpirationTime())
}
