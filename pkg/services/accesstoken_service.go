package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/accesstoken"
	"github.com/infrallm/infrallm/pkg/auth"
	"github.com/infrallm/infrallm/pkg/models"
)

// AccessTokenService mints and manages long-lived API tokens. Only the
// SHA-256 hash is stored; the raw value appears once, in the creation
// response.
type AccessTokenService struct {
	client *ent.Client
}

// NewAccessTokenService creates an AccessTokenService.
func NewAccessTokenService(client *ent.Client) *AccessTokenService {
	return &AccessTokenService{client: client}
}

// Create mints a token for the caller.
func (s *AccessTokenService) Create(httpCtx context.Context, orgID, userID string, req models.CreateAccessTokenRequest) (*models.AccessTokenResponse, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return nil, NewValidationError("expires_at", "must be in the future")
	}

	raw, err := auth.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	create := s.client.AccessToken.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(orgID).
		SetUserID(userID).
		SetName(req.Name).
		SetTokenHash(auth.HashToken(raw))
	if req.ExpiresAt != nil {
		create.SetExpiresAt(*req.ExpiresAt)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	resp := toAccessTokenResponse(t)
	resp.Token = raw
	return resp, nil
}

// List returns the caller's tokens without raw values.
func (s *AccessTokenService) List(httpCtx context.Context, orgID, userID string) (*models.AccessTokenListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	tokens, err := s.client.AccessToken.Query().
		Where(accesstoken.OrganizationID(orgID), accesstoken.UserID(userID)).
		Order(ent.Desc(accesstoken.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list access tokens: %w", err)
	}

	out := make([]*models.AccessTokenResponse, len(tokens))
	for i, t := range tokens {
		out[i] = toAccessTokenResponse(t)
	}
	return &models.AccessTokenListResponse{Tokens: out, TotalCount: len(out)}, nil
}

// Revoke deactivates a token without deleting its record.
func (s *AccessTokenService) Revoke(httpCtx context.Context, orgID, userID, tokenID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	t, err := s.getOwned(ctx, orgID, userID, tokenID)
	if err != nil {
		return err
	}
	if err := t.Update().SetIsActive(false).Exec(ctx); err != nil {
		return fmt.Errorf("failed to revoke access token: %w", err)
	}
	return nil
}

// Delete removes a token record entirely.
func (s *AccessTokenService) Delete(httpCtx context.Context, orgID, userID, tokenID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	t, err := s.getOwned(ctx, orgID, userID, tokenID)
	if err != nil {
		return err
	}
	if err := s.client.AccessToken.DeleteOneID(t.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete access token: %w", err)
	}
	return nil
}

func (s *AccessTokenService) getOwned(ctx context.Context, orgID, userID, tokenID string) (*ent.AccessToken, error) {
	t, err := s.client.AccessToken.Query().
		Where(
			accesstoken.ID(tokenID),
			accesstoken.OrganizationID(orgID),
			accesstoken.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}
	return t, nil
}

func toAccessTokenResponse(t *ent.AccessToken) *models.AccessTokenResponse {
	return &models.AccessTokenResponse{
		ID:         t.ID,
		Name:       t.Name,
		IsActive:   t.IsActive,
		ExpiresAt:  t.ExpiresAt,
		LastUsedAt: t.LastUsedAt,
		CreatedAt:  t.CreatedAt,
	}
}
