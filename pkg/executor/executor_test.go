package executor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/auditlog"
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/pkg/audit"
	"github.com/infrallm/infrallm/pkg/policy"
	"github.com/infrallm/infrallm/pkg/services"
	"github.com/infrallm/infrallm/pkg/sshpool"
	testdb "github.com/infrallm/infrallm/test/database"
)

type fakeRunner struct {
	result      *sshpool.RunResult
	err         error
	calls       int
	lastCommand string
}

func (f *fakeRunner) Stream(_ context.Context, _ string, command string, _ time.Duration, onChunk func(string)) (*sshpool.RunResult, error) {
	f.calls++
	f.lastCommand = command
	if f.err != nil {
		return nil, f.err
	}
	if onChunk != nil {
		onChunk(f.result.Stdout)
	}
	return f.result, nil
}

type testEnv struct {
	client   *ent.Client
	runner   *fakeRunner
	executor *Executor
}

func setupExecutor(t *testing.T, runner *fakeRunner) *testEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	engine := policy.NewEngine(client)
	exec := New(client, engine, runner, audit.NewLogger(client), 120*time.Second)
	return &testEnv{client: client, runner: runner, executor: exec}
}

// seedBasic creates an org, user, host, and a global policy allowing ^ls.*
// and denying ^rm.*.
func (env *testEnv) seedBasic(t *testing.T, requireApproval bool) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, env.client.Organization.Create().
		SetID("org-1").SetName("Acme").Exec(ctx))
	require.NoError(t, env.client.User.Create().
		SetID("user-1").SetEmail("u@example.com").SetDisplayName("U").
		SetPasswordHash("x").Exec(ctx))
	require.NoError(t, env.client.Host.Create().
		SetID("host-1").SetOrganizationID("org-1").
		SetName("web-1").SetHostname("web-1.example.com").Exec(ctx))
	require.NoError(t, env.client.AccessPolicy.Create().
		SetID("policy-1").SetOrganizationID("org-1").SetName("basic").
		SetAllowedCommandPatterns([]string{"^ls.*"}).
		SetDeniedCommandPatterns([]string{"^rm.*"}).
		SetRequireApproval(requireApproval).Exec(ctx))
	require.NoError(t, env.client.UserPolicy.Create().
		SetID("assign-1").SetOrganizationID("org-1").
		SetUserID("user-1").SetPolicyID("policy-1").Exec(ctx))
}

func baseRequest(command string) Request {
	return Request{
		OrgID:     "org-1",
		UserID:    "user-1",
		HostID:    "host-1",
		Command:   command,
		Reasoning: "checking disk layout",
	}
}

func TestExecuteDeniedCommand(t *testing.T) {
	ctx := context.Background()
	env := setupExecutor(t, &fakeRunner{})
	env.seedBasic(t, false)

	_, err := env.executor.Execute(ctx, baseRequest("rm -rf /"))

	var denied *services.PolicyDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, policy.ReasonDeniedPattern, denied.Reason)
	assert.Equal(t, "^rm.*", denied.MatchedPattern)
	assert.Zero(t, env.runner.calls)

	// Exactly one denial audit row, zero execution rows.
	denials := env.client.AuditLog.Query().
		Where(auditlog.EventTypeEQ(auditlog.EventTypeCommandDenied)).
		AllX(ctx)
	require.Len(t, denials, 1)
	assert.Equal(t, policy.ReasonDeniedPattern, denials[0].DenialReason)
	assert.Equal(t, "checking disk layout", denials[0].LlmReasoning)
	require.NotNil(t, denials[0].WasAllowed)
	assert.False(t, *denials[0].WasAllowed)
	assert.Zero(t, env.client.CommandExecution.Query().CountX(ctx))
}

func TestExecuteAllowedCommand(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{result: &sshpool.RunResult{
		ExitCode: 0,
		Stdout:   "total 0\n",
		Duration: 12 * time.Millisecond,
	}}
	env := setupExecutor(t, runner)
	env.seedBasic(t, false)

	result, err := env.executor.Execute(ctx, baseRequest("ls -la"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "total 0\n", result.Stdout)
	assert.Equal(t, "ls -la", runner.lastCommand)

	// Exactly one execution row and one executed audit row, linked by
	// execution id.
	executions := env.client.CommandExecution.Query().AllX(ctx)
	require.Len(t, executions, 1)
	assert.Equal(t, result.ExecutionID, executions[0].ID)

	audits := env.client.AuditLog.Query().
		Where(auditlog.EventTypeEQ(auditlog.EventTypeCommandExecuted)).
		AllX(ctx)
	require.Len(t, audits, 1)
	assert.Equal(t, result.ExecutionID, audits[0].ExecutionID)
}

func TestExecuteDryRun(t *testing.T) {
	ctx := context.Background()
	env := setupExecutor(t, &fakeRunner{})
	env.seedBasic(t, false)

	req := baseRequest("ls")
	req.DryRun = true
	result, err := env.executor.Execute(ctx, req)
	require.NoError(t, err)

	assert.True(t, result.WasDryRun)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "[dry-run] ls", result.Stdout)
	assert.Zero(t, env.runner.calls)

	executions := env.client.CommandExecution.Query().AllX(ctx)
	require.Len(t, executions, 1)
	assert.True(t, executions[0].WasDryRun)
}

func TestExecuteApprovalRequiredIsDenied(t *testing.T) {
	ctx := context.Background()
	env := setupExecutor(t, &fakeRunner{})
	env.seedBasic(t, true)

	_, err := env.executor.Execute(ctx, baseRequest("ls"))

	var denied *services.PolicyDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, ReasonApprovalRequired, denied.Reason)
	assert.Zero(t, env.runner.calls)
}

func TestExecuteNoPolicyAssigned(t *testing.T) {
	ctx := context.Background()
	env := setupExecutor(t, &fakeRunner{})
	env.seedBasic(t, false)
	env.client.UserPolicy.Delete().ExecX(ctx)

	_, err := env.executor.Execute(ctx, baseRequest("ls"))

	var denied *services.PolicyDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, policy.ReasonNoPolicy, denied.Reason)
}

func TestExecuteUnreachableMarksHost(t *testing.T) {
	ctx := context.Background()
	env := setupExecutor(t, &fakeRunner{err: sshpool.ErrUnreachable})
	env.seedBasic(t, false)

	_, err := env.executor.Execute(ctx, baseRequest("ls"))

	var upstream *services.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "ssh", upstream.System)

	h := env.client.Host.GetX(ctx, "host-1")
	assert.Equal(t, host.StatusUnreachable, h.Status)
	assert.NotNil(t, h.LastHealthCheck)
}

func TestExecuteStreamForwardsChunks(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{result: &sshpool.RunResult{Stdout: "line1\nline2\n"}}
	env := setupExecutor(t, runner)
	env.seedBasic(t, false)

	var streamed string
	result, err := env.executor.ExecuteStream(ctx, baseRequest("ls"), func(chunk string) {
		streamed += chunk
	})
	require.NoError(t, err)
	assert.Equal(t, result.Stdout, streamed)
}

func TestExecuteSessionLinked(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{result: &sshpool.RunResult{ExitCode: 0}}
	env := setupExecutor(t, runner)
	env.seedBasic(t, false)

	req := baseRequest("ls")
	req.SessionID = "session-1"
	result, err := env.executor.Execute(ctx, req)
	require.NoError(t, err)

	execution := env.client.CommandExecution.GetX(ctx, result.ExecutionID)
	assert.Equal(t, "session-1", execution.SessionID)
}
