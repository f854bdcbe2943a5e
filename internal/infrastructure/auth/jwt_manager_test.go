package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundtrip(t *testing.T) {
	manager := NewJWTManager("test-secret", 3600)

	token, err := manager.GenerateToken("user-1", "tutor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "tutor", role)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", 3600)

	_, _, err := manager.VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", 3600)
	other := NewJWTManager("other-secret", 3600)

	token, err := manager.GenerateToken("user-1", "student")
	require.NoError(t, err)

	_, _, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -60)

	token, err := manager.GenerateToken("user-1", "student")
	require.NoError(t, err)

	_, _, err = manager.VerifyToken(token)
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Compare(hash, "secret123"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
}
