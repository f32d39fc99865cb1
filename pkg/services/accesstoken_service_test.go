package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/pkg/auth"
	"github.com/infrallm/infrallm/pkg/models"
)

func TestAccessTokenCreateReturnsRawOnce(t *testing.T) {
	client := newTestClient(t)
	svc := NewAccessTokenService(client)

	created, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateAccessTokenRequest{
		Name: "ci-token",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Token, "infra_"))
	assert.True(t, created.IsActive)

	// Only the hash is persisted.
	stored, err := client.AccessToken.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, auth.HashToken(created.Token), stored.TokenHash)
	assert.NotContains(t, stored.TokenHash, created.Token)

	// Listing never repeats the raw value.
	list, err := svc.List(context.Background(), "org-1", "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalCount)
	assert.Empty(t, list.Tokens[0].Token)
}

func TestAccessTokenCreateValidation(t *testing.T) {
	client := newTestClient(t)
	svc := NewAccessTokenService(client)

	var ve *ValidationError
	_, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateAccessTokenRequest{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	past := time.Now().Add(-time.Hour)
	_, err = svc.Create(context.Background(), "org-1", "user-1", models.CreateAccessTokenRequest{
		Name: "x", ExpiresAt: &past,
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "expires_at", ve.Field)
}

func TestAccessTokenRevoke(t *testing.T) {
	client := newTestClient(t)
	svc := NewAccessTokenService(client)

	created, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateAccessTokenRequest{
		Name: "ci-token",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), "org-1", "user-1", created.ID))

	stored, err := client.AccessToken.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	// The record survives revocation.
	list, err := svc.List(context.Background(), "org-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
}

func TestAccessTokenDelete(t *testing.T) {
	client := newTestClient(t)
	svc := NewAccessTokenService(client)

	created, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateAccessTokenRequest{
		Name: "ci-token",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "org-1", "user-1", created.ID))
	list, err := svc.List(context.Background(), "org-1", "user-1")
	require.NoError(t, err)
	assert.Zero(t, list.TotalCount)
}

func TestAccessTokenForeignUserInvisible(t *testing.T) {
	client := newTestClient(t)
	svc := NewAccessTokenService(client)

	created, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateAccessTokenRequest{
		Name: "ci-token",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Revoke(context.Background(), "org-1", "user-2", created.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "org-2", "user-1", created.ID), ErrNotFound)
}
