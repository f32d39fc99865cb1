package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent/membership"
	"github.com/infrallm/infrallm/pkg/auth"
	"github.com/infrallm/infrallm/pkg/models"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", "infrallm", "infrallm-api", time.Hour)
}

func TestRegisterBootstrapsOrganization(t *testing.T) {
	client := newTestClient(t)
	svc := NewUserService(client, newTokenManager())

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:            "Ada@Example.com",
		Password:         "correct-horse",
		DisplayName:      "Ada",
		OrganizationName: "Acme Ops",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, membership.RoleOwner, resp.User.Role)
	require.NotEmpty(t, resp.User.OrganizationID)

	org, err := client.Organization.Get(context.Background(), resp.User.OrganizationID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Ops", org.Name)

	// The token is immediately usable.
	claims, err := newTokenManager().Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, resp.User.OrganizationID, claims.OrgID)
}

func TestRegisterValidation(t *testing.T) {
	client := newTestClient(t)
	svc := NewUserService(client, newTokenManager())

	var ve *ValidationError
	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "not-an-email", Password: "correct-horse",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	_, err = svc.Register(context.Background(), models.RegisterRequest{
		Email: "a@example.com", Password: "short",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	client := newTestClient(t)
	svc := NewUserService(client, newTokenManager())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "a@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), models.RegisterRequest{
		Email: "a@example.com", Password: "different-pass",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// The failed registration must not leave an orphan organization.
	n, err := client.Organization.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoginRoundtrip(t *testing.T) {
	client := newTestClient(t)
	svc := NewUserService(client, newTokenManager())

	reg, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "a@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "A@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.User.ID)
	assert.Equal(t, reg.User.OrganizationID, resp.User.OrganizationID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	client := newTestClient(t)
	svc := NewUserService(client, newTokenManager())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "a@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	// Wrong password and unknown email fail identically.
	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email: "a@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email: "ghost@example.com", Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestMe(t *testing.T) {
	client := newTestClient(t)
	svc := NewUserService(client, newTokenManager())

	reg, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "a@example.com", Password: "correct-horse", DisplayName: "Ada",
	})
	require.NoError(t, err)

	me, err := svc.Me(context.Background(), reg.User.OrganizationID, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", me.DisplayName)
	assert.Equal(t, membership.RoleOwner, me.Role)

	_, err = svc.Me(context.Background(), "other-org", reg.User.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
