package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndValidate(t *testing.T) {
	svc := NewAuthService("test-secret")

	resp, err := svc.Login("demo@nexusbiomedical.example", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.True(t, strings.HasPrefix(resp.UserID, "u_"))

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, "demo@nexusbiomedical.example", claims.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService("test-secret")

	_, err := svc.Login("demo@nexusbiomedical.example", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbageAndWrongKey(t *testing.T) {
	svc := NewAuthService("test-secret")

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService("different-secret")
	resp, err := other.Login("demo@nexusbiomedical.example", "password123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
