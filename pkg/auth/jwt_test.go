package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(ttl time.Duration) *TokenManager {
	return NewTokenManager("test-secret", "infrallm", "infrallm-api", ttl)
}

func TestGenerateValidateRoundtrip(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.Generate("user-1", "u@example.com", "org-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, "org-1", claims.OrgID)
	assert.Equal(t, "jwt", claims.AuthMethod)
}

func TestValidateExpiredToken(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.Generate("user-1", "u@example.com", "org-1")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateWrongSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	other := NewTokenManager("other-secret", "infrallm", "infrallm-api", time.Hour)

	token, err := m.Generate("user-1", "u@example.com", "org-1")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateGarbage(t *testing.T) {
	m := newTestManager(time.Hour)

	_, err := m.Validate("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateWrongIssuer(t *testing.T) {
	issuing := NewTokenManager("test-secret", "someone-else", "infrallm-api", time.Hour)
	m := newTestManager(time.Hour)

	token, err := issuing.Generate("user-1", "u@example.com", "org-1")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
