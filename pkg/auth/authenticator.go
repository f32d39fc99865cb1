package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/accesstoken"
)

// Authenticator resolves bearer credentials, either a JWT or a raw
// infra_-prefixed access token, into request claims.
type Authenticator struct {
	tokens *TokenManager
	client *ent.Client
}

// NewAuthenticator creates an Authenticator backed by the database.
func NewAuthenticator(tokens *TokenManager, client *ent.Client) *Authenticator {
	return &Authenticator{tokens: tokens, client: client}
}

// Authenticate validates the credential and returns its claims.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Claims, error) {
	if IsAccessToken(token) {
		return a.authenticateAccessToken(ctx, token)
	}
	return a.tokens.Validate(token)
}

func (a *Authenticator) authenticateAccessToken(ctx context.Context, raw string) (*Claims, error) {
	hash := HashToken(raw)

	tok, err := a.client.AccessToken.Query().
		Where(accesstoken.TokenHash(hash), accesstoken.IsActive(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	if tok.ExpiresAt != nil && time.Now().After(*tok.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	usr, err := a.client.User.Get(ctx, tok.UserID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}

	// Best-effort usage tracking off the request path.
	go a.touchLastUsed(tok.ID)

	return &Claims{
		UserID:     tok.UserID,
		Email:      usr.Email,
		OrgID:      tok.OrganizationID,
		AuthMethod: "access_token",
	}, nil
}

func (a *Authenticator) touchLastUsed(tokenID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := a.client.AccessToken.UpdateOneID(tokenID).
		SetLastUsedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to update access token last_used_at", "token_id", tokenID, "error", err)
	}
}
