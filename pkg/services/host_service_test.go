package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent/auditlog"
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/pkg/models"
)

func TestHostCreateAndGet(t *testing.T) {
	client := newTestClient(t)
	svc := NewHostService(client, &fakePool{}, newTestAuditor(client))

	created, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateHostRequest{
		Name:        "web-1",
		Hostname:    "web-1.example.com",
		Port:        2222,
		Username:    "deploy",
		Tags:        []string{"web", "prod"},
		Environment: "production",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, host.StatusUnknown, created.Status)

	got, err := svc.Get(context.Background(), "org-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "web-1", got.Name)
	assert.Equal(t, 2222, got.Port)
	assert.Equal(t, []string{"web", "prod"}, got.Tags)

	// Registration leaves an audit trail.
	n, err := client.AuditLog.Query().
		Where(auditlog.EventTypeEQ("host_added")).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHostCreateValidation(t *testing.T) {
	client := newTestClient(t)
	svc := NewHostService(client, &fakePool{}, nil)

	_, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateHostRequest{Hostname: "x"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = svc.Create(context.Background(), "org-1", "user-1", models.CreateHostRequest{Name: "x"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "hostname", ve.Field)

	_, err = svc.Create(context.Background(), "org-1", "user-1", models.CreateHostRequest{
		Name: "x", Hostname: "x.example.com", CredentialID: "missing",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "credential_id", ve.Field)
}

func TestHostGetCrossTenantInvisible(t *testing.T) {
	client := newTestClient(t)
	svc := NewHostService(client, &fakePool{}, nil)
	seedHost(t, client, "host-1", "org-1")

	_, err := svc.Get(context.Background(), "org-2", "host-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHostUpdateInvalidatesPool(t *testing.T) {
	client := newTestClient(t)
	pool := &fakePool{}
	svc := NewHostService(client, pool, nil)
	seedHost(t, client, "host-1", "org-1")

	newPort := 2200
	updated, err := svc.Update(context.Background(), "org-1", "host-1", models.UpdateHostRequest{
		Port: &newPort,
	})
	require.NoError(t, err)
	assert.Equal(t, 2200, updated.Port)
	assert.Equal(t, []string{"host-1"}, pool.invalidations())
}

func TestHostDelete(t *testing.T) {
	client := newTestClient(t)
	pool := &fakePool{}
	svc := NewHostService(client, pool, newTestAuditor(client))
	seedHost(t, client, "host-1", "org-1")

	require.NoError(t, svc.Delete(context.Background(), "org-1", "user-1", "host-1"))
	_, err := svc.Get(context.Background(), "org-1", "host-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"host-1"}, pool.invalidations())

	n, err := client.AuditLog.Query().
		Where(auditlog.EventTypeEQ("host_removed")).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHostTestConnectionRecordsStatus(t *testing.T) {
	client := newTestClient(t)
	pool := &fakePool{}
	svc := NewHostService(client, pool, nil)
	seedHost(t, client, "host-1", "org-1")

	resp, err := svc.TestConnection(context.Background(), "org-1", "host-1")
	require.NoError(t, err)
	assert.True(t, resp.Success)

	h, err := client.Host.Get(context.Background(), "host-1")
	require.NoError(t, err)
	assert.Equal(t, host.StatusHealthy, h.Status)
	require.NotNil(t, h.LastHealthCheck)

	pool.probeErr = errors.New("dial tcp: connection refused")
	resp, err = svc.TestConnection(context.Background(), "org-1", "host-1")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "connection refused")

	h, err = client.Host.Get(context.Background(), "host-1")
	require.NoError(t, err)
	assert.Equal(t, host.StatusUnreachable, h.Status)
}
