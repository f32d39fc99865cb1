package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent/auditlog"
	"github.com/infrallm/infrallm/pkg/models"
	"github.com/infrallm/infrallm/pkg/policy"
)

func TestPolicyCreateAndTestCommand(t *testing.T) {
	client := newTestClient(t)
	svc := NewPolicyService(client, policy.NewEngine(client), newTestAuditor(client))

	p, err := svc.Create(context.Background(), "org-1", "user-1", models.CreatePolicyRequest{
		Name:                   "read-only",
		AllowedCommandPatterns: []string{`ls(\s.*)?`, `cat\s.*`},
		DeniedCommandPatterns:  []string{`.*rm.*`},
	})
	require.NoError(t, err)

	result, err := svc.TestCommand(context.Background(), "org-1", p.ID, "ls -la /var/log")
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	result, err = svc.TestCommand(context.Background(), "org-1", p.ID, "rm -rf /")
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	n, err := client.AuditLog.Query().
		Where(auditlog.EventTypeEQ("policy_changed")).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPolicyCreateRejectsBadPattern(t *testing.T) {
	client := newTestClient(t)
	svc := NewPolicyService(client, policy.NewEngine(client), nil)

	_, err := svc.Create(context.Background(), "org-1", "user-1", models.CreatePolicyRequest{
		Name:                   "broken",
		AllowedCommandPatterns: []string{`ls(`},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "allowed_command_patterns", ve.Field)
}

func TestPolicyUpdatePartial(t *testing.T) {
	client := newTestClient(t)
	svc := NewPolicyService(client, policy.NewEngine(client), nil)

	p, err := svc.Create(context.Background(), "org-1", "user-1", models.CreatePolicyRequest{
		Name:                   "ops",
		AllowedCommandPatterns: []string{`uptime`},
	})
	require.NoError(t, err)

	approve := true
	updated, err := svc.Update(context.Background(), "org-1", "user-1", p.ID, models.UpdatePolicyRequest{
		RequireApproval: &approve,
	})
	require.NoError(t, err)
	assert.True(t, updated.RequireApproval)
	assert.Equal(t, "ops", updated.Name)
	assert.Equal(t, []string{`uptime`}, updated.AllowedCommandPatterns)
}

func TestPolicyAssignments(t *testing.T) {
	client := newTestClient(t)
	svc := NewPolicyService(client, policy.NewEngine(client), nil)

	require.NoError(t, client.User.Create().
		SetID("user-2").SetEmail("op@example.com").
		SetDisplayName("Op").SetPasswordHash("x").
		Exec(context.Background()))

	p, err := svc.Create(context.Background(), "org-1", "user-1", models.CreatePolicyRequest{
		Name:                   "ops",
		AllowedCommandPatterns: []string{`uptime`},
	})
	require.NoError(t, err)

	a, err := svc.Assign(context.Background(), "org-1", "user-1", p.ID, models.CreateAssignmentRequest{
		UserID: "user-2",
	})
	require.NoError(t, err)

	list, err := svc.Assignments(context.Background(), "org-1", p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "user-2", list[0].UserID)

	require.NoError(t, svc.Unassign(context.Background(), "org-1", "user-1", a.ID))
	list, err = svc.Assignments(context.Background(), "org-1", p.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPolicyAssignUnknownUser(t *testing.T) {
	client := newTestClient(t)
	svc := NewPolicyService(client, policy.NewEngine(client), nil)

	p, err := svc.Create(context.Background(), "org-1", "user-1", models.CreatePolicyRequest{
		Name:                   "ops",
		AllowedCommandPatterns: []string{`uptime`},
	})
	require.NoError(t, err)

	_, err = svc.Assign(context.Background(), "org-1", "user-1", p.ID, models.CreateAssignmentRequest{
		UserID: "ghost",
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "user_id", ve.Field)
}

func TestPolicyDeleteRemovesAssignments(t *testing.T) {
	client := newTestClient(t)
	svc := NewPolicyService(client, policy.NewEngine(client), nil)

	require.NoError(t, client.User.Create().
		SetID("user-2").SetEmail("op@example.com").
		SetDisplayName("Op").SetPasswordHash("x").
		Exec(context.Background()))

	p, err := svc.Create(context.Background(), "org-1", "user-1", models.CreatePolicyRequest{
		Name:                   "ops",
		AllowedCommandPatterns: []string{`uptime`},
	})
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), "org-1", "user-1", p.ID, models.CreateAssignmentRequest{
		UserID: "user-2",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "org-1", "user-1", p.ID))

	_, err = svc.Get(context.Background(), "org-1", p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	n, err := client.UserPolicy.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPolicyPresetsAreValid(t *testing.T) {
	client := newTestClient(t)
	svc := NewPolicyService(client, policy.NewEngine(client), nil)

	presets := svc.Presets()
	require.NotEmpty(t, presets)
	for _, preset := range presets {
		assert.NoError(t, validatePatterns(preset.AllowedCommandPatterns), preset.Name)
		assert.NoError(t, validatePatterns(preset.DeniedCommandPatterns), preset.Name)
	}
}
