package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent/credential"
	"github.com/infrallm/infrallm/pkg/sshpool"
)

func TestTargetResolverDecryptsCredential(t *testing.T) {
	client := newTestClient(t)
	enc := newTestEncryptor(t)
	ctx := context.Background()

	sealed, err := enc.Encrypt("s3cret-password")
	require.NoError(t, err)
	require.NoError(t, client.Credential.Create().
		SetID("cred-1").SetOrganizationID("org-1").SetName("root-pw").
		SetKind(credential.KindPassword).SetEncryptedValue(sealed).
		Exec(ctx))
	require.NoError(t, client.Host.Create().
		SetID("host-1").SetOrganizationID("org-1").SetName("web-1").
		SetHostname("web-1.example.com").SetPort(2222).SetUsername("ops").
		SetCredentialID("cred-1").
		Exec(ctx))

	resolve := NewTargetResolver(client, enc)
	target, err := resolve(ctx, "host-1")
	require.NoError(t, err)
	assert.Equal(t, "web-1.example.com:2222", target.Addr)
	assert.Equal(t, "ops", target.User)
	assert.Equal(t, "s3cret-password", target.Password)
	assert.Empty(t, target.PrivateKeyPEM)
}

func TestTargetResolverLegacyPlaintextCredential(t *testing.T) {
	client := newTestClient(t)
	enc := newTestEncryptor(t)
	ctx := context.Background()

	// Values stored before encryption was enabled pass through Decrypt
	// unchanged.
	require.NoError(t, client.Credential.Create().
		SetID("cred-1").SetOrganizationID("org-1").SetName("legacy-pw").
		SetKind(credential.KindPassword).SetEncryptedValue("plain-password").
		Exec(ctx))
	require.NoError(t, client.Host.Create().
		SetID("host-1").SetOrganizationID("org-1").SetName("web-1").
		SetHostname("web-1.example.com").SetCredentialID("cred-1").
		Exec(ctx))

	target, err := NewTargetResolver(client, enc)(ctx, "host-1")
	require.NoError(t, err)
	assert.Equal(t, "plain-password", target.Password)
}

func TestTargetResolverNoCredential(t *testing.T) {
	client := newTestClient(t)
	enc := newTestEncryptor(t)
	ctx := context.Background()

	require.NoError(t, client.Host.Create().
		SetID("host-1").SetOrganizationID("org-1").SetName("web-1").
		SetHostname("web-1.example.com").
		Exec(ctx))

	resolve := NewTargetResolver(client, enc)
	target, err := resolve(ctx, "host-1")
	require.NoError(t, err)
	assert.Empty(t, target.Password)
	assert.Empty(t, target.PrivateKeyPEM)

	_, err = resolve(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTargetResolverRejectsAPITokenKind(t *testing.T) {
	client := newTestClient(t)
	enc := newTestEncryptor(t)
	ctx := context.Background()

	sealed, err := enc.Encrypt("tok_abc")
	require.NoError(t, err)
	require.NoError(t, client.Credential.Create().
		SetID("cred-1").SetOrganizationID("org-1").SetName("api").
		SetKind(credential.KindAPIToken).SetEncryptedValue(sealed).
		Exec(ctx))
	require.NoError(t, client.Host.Create().
		SetID("host-1").SetOrganizationID("org-1").SetName("web-1").
		SetHostname("web-1.example.com").SetCredentialID("cred-1").
		Exec(ctx))

	_, err = NewTargetResolver(client, enc)(ctx, "host-1")
	assert.ErrorIs(t, err, sshpool.ErrNoCredential)
}
