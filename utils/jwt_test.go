package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tokenString, err := GenerateToken("admin-7", "ops@example.com", time.Hour)
	require.NoError(t, err)

	token, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	sub, err := ExtractIDFromToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "admin-7", sub)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	tokenString, err := GenerateToken("admin-7", "ops@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
