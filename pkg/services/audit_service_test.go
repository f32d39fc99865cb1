package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/auditlog"
	"github.com/infrallm/infrallm/pkg/models"
)

func seedAuditEntries(t *testing.T, client *ent.Client) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	rows := []struct {
		id    string
		org   string
		event auditlog.EventType
		user  string
		host  string
		at    time.Time
	}{
		{"a-1", "org-1", "command_executed", "user-1", "host-1", base},
		{"a-2", "org-1", "command_denied", "user-1", "host-1", base.Add(10 * time.Minute)},
		{"a-3", "org-1", "command_executed", "user-2", "host-2", base.Add(20 * time.Minute)},
		{"a-4", "org-2", "command_executed", "user-9", "host-9", base.Add(30 * time.Minute)},
	}
	for _, r := range rows {
		require.NoError(t, client.AuditLog.Create().
			SetID(r.id).
			SetOrganizationID(r.org).
			SetEventType(r.event).
			SetUserID(r.user).
			SetHostID(r.host).
			SetCreatedAt(r.at).
			Exec(context.Background()))
	}
}

func TestAuditSearchScopedToOrg(t *testing.T) {
	client := newTestClient(t)
	seedAuditEntries(t, client)
	svc := NewAuditService(client)

	page, err := svc.Search(context.Background(), "org-1", models.AuditFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	// Newest first.
	assert.Equal(t, "a-3", page.Entries[0].ID)
}

func TestAuditSearchFilters(t *testing.T) {
	client := newTestClient(t)
	seedAuditEntries(t, client)
	svc := NewAuditService(client)

	page, err := svc.Search(context.Background(), "org-1", models.AuditFilters{
		EventType: "command_denied",
	})
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "a-2", page.Entries[0].ID)

	page, err = svc.Search(context.Background(), "org-1", models.AuditFilters{
		UserID: "user-2",
	})
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "a-3", page.Entries[0].ID)

	since := time.Now().Add(-55 * time.Minute)
	until := time.Now().Add(-45 * time.Minute)
	page, err = svc.Search(context.Background(), "org-1", models.AuditFilters{
		Since: &since, Until: &until,
	})
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "a-2", page.Entries[0].ID)
}

func TestAuditSearchPagination(t *testing.T) {
	client := newTestClient(t)
	seedAuditEntries(t, client)
	svc := NewAuditService(client)

	page, err := svc.Search(context.Background(), "org-1", models.AuditFilters{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	assert.Len(t, page.Entries, 2)

	page, err = svc.Search(context.Background(), "org-1", models.AuditFilters{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, page.Entries, 1)
	assert.Equal(t, "a-1", page.Entries[0].ID)
}
