package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/pkg/models"
)

func TestRequireAuthMissingToken(t *testing.T) {
	env := newTestEnv(t)
	rec := env.request(t, http.MethodGet, "/api/hosts", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var envelope errorEnvelope
	decodeJSON(t, rec, &envelope)
	assert.Equal(t, "unauthenticated", envelope.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	env := newTestEnv(t)
	req := env.request(t, http.MethodGet, "/api/hosts?access_token=not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, req.Code)
}

func TestQueryParamTokenAccepted(t *testing.T) {
	env := newTestEnv(t)
	rec := env.request(t, http.MethodGet, "/api/hosts?access_token="+env.token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessTokenAuthenticates(t *testing.T) {
	env := newTestEnv(t)

	created := env.authed(t, http.MethodPost, "/api/access-tokens", map[string]string{"name": "ci"})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	var tokenResp models.AccessTokenResponse
	decodeJSON(t, created, &tokenResp)
	require.NotEmpty(t, tokenResp.Token)

	req := env.request(t, http.MethodGet, "/api/hosts?api_key="+tokenResp.Token, nil)
	assert.Equal(t, http.StatusOK, req.Code)

	// Revoked tokens stop working.
	revoke := env.authed(t, http.MethodPost, "/api/access-tokens/"+tokenResp.ID+"/revoke", nil)
	require.Equal(t, http.StatusNoContent, revoke.Code)
	after := env.request(t, http.MethodGet, "/api/hosts?api_key="+tokenResp.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
}

func TestMeReturnsAuthenticatedUser(t *testing.T) {
	env := newTestEnv(t)
	rec := env.authed(t, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.UserResponse
	decodeJSON(t, rec, &user)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, env.orgID, user.OrganizationID)
}
