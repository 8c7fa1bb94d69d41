package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "organizer", "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "organizer", role)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "organizer", "test-secret", time.Hour)
	require.NoError(t, err)

	_, _, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT("user-1", "organizer", "test-secret", -time.Hour)
	require.NoError(t, err)

	_, _, err = ValidateJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbageToken(t *testing.T) {
	_, _, err := ValidateJWT("not-a-token", "test-secret")
	assert.Error(t, err)
}
