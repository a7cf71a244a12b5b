package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Verify(hash, "secret123"))
	assert.ErrorIs(t, hasher.Verify(hash, "wrong"), ErrPasswordMismatch)
}

func TestPasswordHasher_TooLong(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestNewPasswordHasher_InvalidCost(t *testing.T) {
	hasher := NewPasswordHasher(-1)
	assert.Equal(t, DefaultCost, hasher.cost)

	hasher = NewPasswordHasher(100)
	assert.Equal(t, DefaultCost, hasher.cost)
}
