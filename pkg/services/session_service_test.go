package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent/message"
	"github.com/infrallm/infrallm/pkg/models"
)

func TestSessionCreateChecksHostOwnership(t *testing.T) {
	client := newTestClient(t)
	svc := NewSessionService(client, newTestAuditor(client))
	seedHost(t, client, "host-1", "org-1")
	seedHost(t, client, "host-2", "org-2")

	sess, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateSessionRequest{
		HostIDs: []string{"host-1"},
		Title:   "disk triage",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"host-1"}, sess.HostIds)
	assert.Equal(t, "disk triage", sess.Title)

	// Another tenant's host cannot be attached.
	_, err = svc.Create(context.Background(), "org-1", "user-1", models.CreateSessionRequest{
		HostIDs: []string{"host-1", "host-2"},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "host_ids", ve.Field)
}

func TestSessionListScopedToUser(t *testing.T) {
	client := newTestClient(t)
	svc := NewSessionService(client, nil)

	_, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateSessionRequest{})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "org-1", "user-2", models.CreateSessionRequest{})
	require.NoError(t, err)

	list, err := svc.List(context.Background(), "org-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
}

func TestSessionGetForeignUserInvisible(t *testing.T) {
	client := newTestClient(t)
	svc := NewSessionService(client, nil)

	sess, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateSessionRequest{})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "org-1", "user-2", sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(context.Background(), "org-2", "user-1", sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionMessagesInOrder(t *testing.T) {
	client := newTestClient(t)
	svc := NewSessionService(client, nil)

	sess, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateSessionRequest{})
	require.NoError(t, err)

	for i, content := range []string{"first", "second", "third"} {
		require.NoError(t, client.Message.Create().
			SetID(string(rune('a'+i))).
			SetSessionID(sess.ID).
			SetRole(message.RoleUser).
			SetContent(content).
			Exec(context.Background()))
	}

	msgs, err := svc.Messages(context.Background(), "org-1", "user-1", sess.ID)
	require.NoError(t, err)
	require.Len(t, msgs.Messages, 3)
	assert.Equal(t, "first", msgs.Messages[0].Content)
	assert.Equal(t, "third", msgs.Messages[2].Content)
}

func TestSessionDeleteCascadesMessages(t *testing.T) {
	client := newTestClient(t)
	svc := NewSessionService(client, newTestAuditor(client))

	sess, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateSessionRequest{})
	require.NoError(t, err)
	require.NoError(t, client.Message.Create().
		SetID("msg-1").
		SetSessionID(sess.ID).
		SetRole(message.RoleUser).
		SetContent("hi").
		Exec(context.Background()))

	require.NoError(t, svc.Delete(context.Background(), "org-1", "user-1", sess.ID))

	_, err = svc.Get(context.Background(), "org-1", "user-1", sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	n, err := client.Message.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
