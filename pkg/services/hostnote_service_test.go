package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/pkg/models"
)

func TestHostNoteUpsertAndGet(t *testing.T) {
	client := newTestClient(t)
	svc := NewNoteService(client)
	seedHost(t, client, "host-1", "org-1")

	note, err := svc.UpsertHostNote(context.Background(), "org-1", "host-1", "nginx lives in /opt/nginx")
	require.NoError(t, err)
	assert.Equal(t, "nginx lives in /opt/nginx", note.Content)

	// Second write replaces, it does not duplicate.
	note, err = svc.UpsertHostNote(context.Background(), "org-1", "host-1", "migrated to /srv/nginx")
	require.NoError(t, err)
	assert.Equal(t, "migrated to /srv/nginx", note.Content)

	n, err := client.HostNote.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.GetHostNote(context.Background(), "org-1", "host-1")
	require.NoError(t, err)
	assert.Equal(t, "migrated to /srv/nginx", got.Content)
}

func TestHostNoteUnknownHost(t *testing.T) {
	client := newTestClient(t)
	svc := NewNoteService(client)

	_, err := svc.UpsertHostNote(context.Background(), "org-1", "ghost", "x")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetHostNote(context.Background(), "org-1", "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHostNoteDelete(t *testing.T) {
	client := newTestClient(t)
	svc := NewNoteService(client)
	seedHost(t, client, "host-1", "org-1")

	_, err := svc.UpsertHostNote(context.Background(), "org-1", "host-1", "x")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteHostNote(context.Background(), "org-1", "host-1"))
	assert.ErrorIs(t, svc.DeleteHostNote(context.Background(), "org-1", "host-1"), ErrNotFound)
}

func TestPromptSettingsDefaultEmpty(t *testing.T) {
	client := newTestClient(t)
	svc := NewNoteService(client)

	ps, err := svc.GetPromptSettings(context.Background(), "org-1", "user-1")
	require.NoError(t, err)
	assert.Empty(t, ps.SystemPrompt)
	assert.Empty(t, ps.DefaultModel)
}

func TestPromptSettingsUpsertPartial(t *testing.T) {
	client := newTestClient(t)
	svc := NewNoteService(client)

	system := "Always answer in French."
	ps, err := svc.UpdatePromptSettings(context.Background(), "org-1", "user-1", models.UpdatePromptSettingsRequest{
		SystemPrompt: &system,
	})
	require.NoError(t, err)
	assert.Equal(t, system, ps.SystemPrompt)

	// A later partial update keeps untouched fields.
	model := "claude-sonnet-4-5"
	ps, err = svc.UpdatePromptSettings(context.Background(), "org-1", "user-1", models.UpdatePromptSettingsRequest{
		DefaultModel: &model,
	})
	require.NoError(t, err)
	assert.Equal(t, system, ps.SystemPrompt)
	assert.Equal(t, model, ps.DefaultModel)

	n, err := client.PromptSettings.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
