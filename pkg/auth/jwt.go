// Package auth provides JWT issuance/validation, password hashing, and
// long-lived access token handling.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

// Claims is the authenticated identity attached to a request.
type Claims struct {
	UserID     string
	Email      string
	OrgID      string
	AuthMethod string // "jwt" or "access_token"
}

// TokenManager issues and validates HS256 JWTs.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenManager creates a TokenManager with the given signing secret.
func NewTokenManager(secret, issuer, audience string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Generate signs a token for the given user identity.
func (m *TokenManager) Generate(userID, email, orgID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    userID,
		"email":  email,
		"org_id": orgID,
		"iss":    m.issuer,
		"aud":    m.audience,
		"iat":    now.Unix(),
		"exp":    now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning its claims.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	orgID, _ := claims["org_id"].(string)
	if sub == "" || orgID == "" {
		return nil, ErrTokenInvalid
	}

	return &Claims{
		UserID:     sub,
		Email:      email,
		OrgID:      orgID,
		AuthMethod: "jwt",
	}, nil
}
