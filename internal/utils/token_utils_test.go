package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"
	roles := []string{"admin", "viewer"}

	token, err := GenerateJWT("user-1", "u@example.com", "User One", roles, secret, time.Hour, "ino-backend-test")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, "User One", claims.Name)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "ino-backend-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "u@example.com", "User One", nil, "secret-a", time.Hour, "iss")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret-b")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("user-1", "u@example.com", "User One", nil, "secret", -time.Minute, "iss")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	_, err := ParseAndValidateJWT("definitely.not.ajwt", "secret")
	assert.Error(t, err)
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	b, err := GenerateSecureRandomString(16)
	require.NoError(t, err)

	assert.Len(t, a, 32) // hex doubles the byte count
	assert.NotEqual(t, a, b)
}
