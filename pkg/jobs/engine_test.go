package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/job"
	"github.com/infrallm/infrallm/ent/jobrun"
	"github.com/infrallm/infrallm/pkg/chattask"
	"github.com/infrallm/infrallm/pkg/orchestrator"
	"github.com/infrallm/infrallm/pkg/services"
	testdb "github.com/infrallm/infrallm/test/database"
)

type fakeConversations struct {
	mu        sync.Mutex
	sessions  []string
	messages  []string
	deadlines []time.Time
	response  string
	err       error
}

func (f *fakeConversations) SendMessageStream(ctx context.Context, sessionID, userMessage, _ string, _ orchestrator.Callbacks) (*ent.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, sessionID)
	f.messages = append(f.messages, userMessage)
	if d, ok := ctx.Deadline(); ok {
		f.deadlines = append(f.deadlines, d)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &ent.Message{Content: f.response}, nil
}

func (f *fakeConversations) lastMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1]
}

type testEnv struct {
	client *ent.Client
	conv   *fakeConversations
	engine *Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	conv := &fakeConversations{response: "all clear"}
	tasks := chattask.NewManager()
	t.Cleanup(func() { tasks.Shutdown(time.Second) })
	return &testEnv{
		client: client,
		conv:   conv,
		engine: NewEngine(client, conv, tasks),
	}
}

func seedJob(t *testing.T, client *ent.Client, mutate func(*ent.JobCreate)) *ent.Job {
	t.Helper()
	create := client.Job.Create().
		SetID("job-1").
		SetOrganizationID("org-1").
		SetUserID("user-1").
		SetName("nightly-check").
		SetTriggerType(job.TriggerTypeWebhook).
		SetWebhookSecret("s3cret").
		SetPrompt("Check disk usage on all hosts.").
		SetHostIds([]string{"host-1"})
	if mutate != nil {
		mutate(create)
	}
	j, err := create.Save(context.Background())
	require.NoError(t, err)
	return j
}

func runsFor(t *testing.T, client *ent.Client, jobID string) []*ent.JobRun {
	t.Helper()
	runs, err := client.JobRun.Query().
		Where(jobrun.JobID(jobID)).
		All(context.Background())
	require.NoError(t, err)
	return runs
}

func TestWebhookBadSecret(t *testing.T) {
	env := newTestEnv(t)
	seedJob(t, env.client, nil)

	_, err := env.engine.HandleWebhook(context.Background(), "job-1", "wrong", nil)
	assert.ErrorIs(t, err, ErrBadSecret)
	assert.Empty(t, runsFor(t, env.client, "job-1"))
}

func TestWebhookEmptyConfiguredSecretNeverMatches(t *testing.T) {
	env := newTestEnv(t)
	seedJob(t, env.client, func(c *ent.JobCreate) { c.SetWebhookSecret("") })

	_, err := env.engine.HandleWebhook(context.Background(), "job-1", "", nil)
	assert.ErrorIs(t, err, ErrBadSecret)
}

func TestWebhookDisabledJob(t *testing.T) {
	env := newTestEnv(t)
	seedJob(t, env.client, func(c *ent.JobCreate) { c.SetIsEnabled(false) })

	_, err := env.engine.HandleWebhook(context.Background(), "job-1", "s3cret", nil)
	assert.ErrorIs(t, err, ErrJobDisabled)
}

func TestWebhookUnknownJob(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.engine.HandleWebhook(context.Background(), "missing", "s3cret", nil)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestWebhookWithoutAutoRunCompletesImmediately(t *testing.T) {
	env := newTestEnv(t)
	seedJob(t, env.client, nil)

	run, err := env.engine.HandleWebhook(context.Background(), "job-1", "s3cret", []byte(`{"alert":"disk"}`))
	require.NoError(t, err)

	stored, err := env.client.JobRun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, jobrun.StatusCompleted, stored.Status)
	assert.Equal(t, jobrun.TriggeredByWebhook, stored.TriggeredBy)
	assert.Equal(t, `{"alert":"disk"}`, stored.Payload)
	assert.NotNil(t, stored.FinishedAt)
	assert.Empty(t, env.conv.sessions)
}

func TestWebhookAutoRunDrivesSession(t *testing.T) {
	env := newTestEnv(t)
	seedJob(t, env.client, func(c *ent.JobCreate) { c.SetAutoRunLlm(true) })

	run, err := env.engine.HandleWebhook(context.Background(), "job-1", "s3cret", []byte(`{"alert":"disk"}`))
	require.NoError(t, err)
	assert.Equal(t, jobrun.StatusReceived, run.Status)

	assert.Eventually(t, func() bool {
		stored, err := env.client.JobRun.Get(context.Background(), run.ID)
		return err == nil && stored.Status == jobrun.StatusCompleted
	}, 2*time.Second, 10*time.Millisecond)

	stored, err := env.client.JobRun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, "all clear", stored.Response)
	require.NotEmpty(t, stored.SessionID)

	sess, err := env.client.Session.Get(context.Background(), stored.SessionID)
	require.NoError(t, err)
	assert.True(t, sess.IsJobRunSession)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, []string{"host-1"}, sess.HostIds)

	// The synthesized message carries the job prompt and the payload.
	msg := env.conv.lastMessage()
	assert.Contains(t, msg, "Check disk usage")
	assert.Contains(t, msg, `{"alert":"disk"}`)
}

func TestRunDeadlineBoundsConversation(t *testing.T) {
	env := newTestEnv(t)
	env.engine.SetRunDeadline(30 * time.Second)
	seedJob(t, env.client, func(c *ent.JobCreate) { c.SetAutoRunLlm(true) })

	run, err := env.engine.HandleWebhook(context.Background(), "job-1", "s3cret", nil)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		stored, err := env.client.JobRun.Get(context.Background(), run.ID)
		return err == nil && stored.Status == jobrun.StatusCompleted
	}, 2*time.Second, 10*time.Millisecond)

	env.conv.mu.Lock()
	defer env.conv.mu.Unlock()
	require.Len(t, env.conv.deadlines, 1)
	remaining := time.Until(env.conv.deadlines[0])
	assert.Greater(t, remaining, time.Duration(0))
	assert.LessOrEqual(t, remaining, 30*time.Second)
}

func TestAutoRunFailureMarksRunFailed(t *testing.T) {
	env := newTestEnv(t)
	env.conv.err = errors.New("provider unavailable")
	seedJob(t, env.client, func(c *ent.JobCreate) { c.SetAutoRunLlm(true) })

	run, err := env.engine.HandleWebhook(context.Background(), "job-1", "s3cret", nil)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		stored, err := env.client.JobRun.Get(context.Background(), run.ID)
		return err == nil && stored.Status == jobrun.StatusFailed
	}, 2*time.Second, 10*time.Millisecond)

	stored, err := env.client.JobRun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.Error, "provider unavailable")
}

func TestRunManual(t *testing.T) {
	env := newTestEnv(t)
	seedJob(t, env.client, nil)

	run, err := env.engine.RunManual(context.Background(), "org-1", "job-1")
	require.NoError(t, err)
	assert.Equal(t, jobrun.TriggeredByManual, run.TriggeredBy)

	_, err = env.engine.RunManual(context.Background(), "org-2", "job-1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
