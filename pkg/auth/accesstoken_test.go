package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenFormat(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)

	assert.True(t, IsAccessToken(token))
	assert.Regexp(t, regexp.MustCompile(`^infra_[a-z2-7]{40}$`), token)
}

func TestGenerateTokenUnique(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashToken(t *testing.T) {
	sum := sha256.Sum256([]byte("infra_abc"))
	assert.Equal(t, hex.EncodeToString(sum[:]), HashToken("infra_abc"))
}

func TestIsAccessToken(t *testing.T) {
	assert.True(t, IsAccessToken("infra_xyz"))
	assert.False(t, IsAccessToken("eyJhbGciOi..."))
	assert.False(t, IsAccessToken(""))
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
