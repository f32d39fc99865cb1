package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent/mcpserver"
	"github.com/infrallm/infrallm/pkg/crypto"
	"github.com/infrallm/infrallm/pkg/models"
)

func TestMcpServerCreateHTTPEncryptsKey(t *testing.T) {
	client := newTestClient(t)
	enc := newTestEncryptor(t)
	svc := NewMcpServerService(client, enc, &fakeToolCache{})

	resp, err := svc.Create(context.Background(), "org-1", models.CreateMcpServerRequest{
		Name:          "weather",
		TransportType: mcpserver.TransportTypeHTTP,
		BaseURL:       "https://mcp.example.com",
		APIKey:        "sk-live-secret",
	})
	require.NoError(t, err)
	assert.True(t, resp.HasAPIKey)
	assert.True(t, resp.VerifySSL)

	stored, err := client.McpServer.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, crypto.IsEncrypted(stored.APIKeyEncrypted))
	assert.NotContains(t, stored.APIKeyEncrypted, "sk-live-secret")
}

func TestMcpServerValidation(t *testing.T) {
	client := newTestClient(t)
	svc := NewMcpServerService(client, newTestEncryptor(t), nil)

	var ve *ValidationError
	_, err := svc.Create(context.Background(), "org-1", models.CreateMcpServerRequest{
		Name:          "my_server",
		TransportType: mcpserver.TransportTypeHTTP,
		BaseURL:       "https://x",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = svc.Create(context.Background(), "org-1", models.CreateMcpServerRequest{
		Name:          "weather",
		TransportType: mcpserver.TransportTypeHTTP,
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "base_url", ve.Field)

	_, err = svc.Create(context.Background(), "org-1", models.CreateMcpServerRequest{
		Name:          "files",
		TransportType: mcpserver.TransportTypeStdio,
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "command", ve.Field)
}

func TestMcpServerListOmitsKeys(t *testing.T) {
	client := newTestClient(t)
	svc := NewMcpServerService(client, newTestEncryptor(t), nil)

	_, err := svc.Create(context.Background(), "org-1", models.CreateMcpServerRequest{
		Name:          "files",
		TransportType: mcpserver.TransportTypeStdio,
		Command:       "/usr/local/bin/files-mcp",
		Arguments:     []string{"--root", "/srv"},
	})
	require.NoError(t, err)

	list, err := svc.List(context.Background(), "org-1")
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalCount)
	assert.Equal(t, "files", list.Servers[0].Name)
	assert.False(t, list.Servers[0].HasAPIKey)
	assert.Equal(t, []string{"--root", "/srv"}, list.Servers[0].Arguments)
}

func TestMcpServerUpdateEvictsCache(t *testing.T) {
	client := newTestClient(t)
	cache := &fakeToolCache{}
	svc := NewMcpServerService(client, newTestEncryptor(t), cache)

	resp, err := svc.Create(context.Background(), "org-1", models.CreateMcpServerRequest{
		Name:          "weather",
		TransportType: mcpserver.TransportTypeHTTP,
		BaseURL:       "https://mcp.example.com",
	})
	require.NoError(t, err)

	disabled := false
	updated, err := svc.Update(context.Background(), "org-1", resp.ID, models.CreateMcpServerRequest{
		IsEnabled: &disabled,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsEnabled)
	assert.Equal(t, "weather", updated.Name)
	assert.Equal(t, []string{resp.ID}, cache.evictions())
}

func TestMcpServerDeleteEvictsCache(t *testing.T) {
	client := newTestClient(t)
	cache := &fakeToolCache{}
	svc := NewMcpServerService(client, newTestEncryptor(t), cache)

	resp, err := svc.Create(context.Background(), "org-1", models.CreateMcpServerRequest{
		Name:          "weather",
		TransportType: mcpserver.TransportTypeHTTP,
		BaseURL:       "https://mcp.example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "org-1", resp.ID))
	assert.Equal(t, []string{resp.ID}, cache.evictions())

	_, err = svc.Get(context.Background(), "org-1", resp.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMcpServerCrossTenantInvisible(t *testing.T) {
	client := newTestClient(t)
	svc := NewMcpServerService(client, newTestEncryptor(t), nil)

	resp, err := svc.Create(context.Background(), "org-1", models.CreateMcpServerRequest{
		Name:          "weather",
		TransportType: mcpserver.TransportTypeHTTP,
		BaseURL:       "https://mcp.example.com",
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "org-2", resp.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "org-2", resp.ID), ErrNotFound)
}
