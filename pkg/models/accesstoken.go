package models

import (
	"time"
)

// CreateAccessTokenRequest mints a long-lived API token
type CreateAccessTokenRequest struct {
	Name      string     `json:"name"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// AccessTokenResponse is the client-visible view of an access token.
// Token carries the raw value only in the creation response and is never
// populated again.
type AccessTokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Token      string     `json:"token,omitempty"`
	IsActive   bool       `json:"is_active"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AccessTokenListResponse contains a user's access tokens
type AccessTokenListResponse struct {
	Tokens     []*AccessTokenResponse `json:"tokens"`
	TotalCount int                    `json:"total_count"`
}
