package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"
)

// TokenPrefix identifies long-lived API tokens on the wire.
const TokenPrefix = "infra_"

// rawTokenBytes yields 40 base32 characters after encoding.
const rawTokenBytes = 25

var tokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateToken mints a raw access token: "infra_" followed by 40 random
// base32 characters. The raw value is shown to the caller once; only its
// hash is persisted.
func GenerateToken() (string, error) {
	buf := make([]byte, rawTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return TokenPrefix + strings.ToLower(tokenEncoding.EncodeToString(buf)), nil
}

// HashToken returns the hex-encoded SHA-256 of the raw token. This is the
// only form ever stored.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// IsAccessToken reports whether s looks like a raw access token.
func IsAccessToken(s string) bool {
	return strings.HasPrefix(s, TokenPrefix)
}
