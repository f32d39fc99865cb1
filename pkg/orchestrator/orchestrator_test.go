package orchestrator

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/message"
	"github.com/infrallm/infrallm/pkg/executor"
	"github.com/infrallm/infrallm/pkg/llm"
	"github.com/infrallm/infrallm/pkg/mcp"
	"github.com/infrallm/infrallm/pkg/services"
	testdb "github.com/infrallm/infrallm/test/database"
)

// scriptedProvider replays a fixed sequence of responses, recording the
// requests it sees. Title-generation calls are answered out of band.
type scriptedProvider struct {
	mu        sync.Mutex
	responses []*llm.Response
	requests  []llm.Request
	title     string
}

func (p *scriptedProvider) DefaultModel() string { return "test-model" }

func (p *scriptedProvider) SendStream(_ context.Context, req llm.Request, onDelta func(string)) (*llm.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if strings.Contains(req.System, "short title") {
		return &llm.Response{Content: p.title, StopReason: "end_turn"}, nil
	}

	p.requests = append(p.requests, req)
	idx := len(p.requests) - 1
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	resp := p.responses[idx]
	if onDelta != nil && resp.Content != "" {
		onDelta(resp.Content)
	}
	return resp, nil
}

func (p *scriptedProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

func (p *scriptedProvider) request(i int) llm.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[i]
}

type providerFunc func(ctx context.Context, req llm.Request, onDelta func(string)) (*llm.Response, error)

func (f providerFunc) SendStream(ctx context.Context, req llm.Request, onDelta func(string)) (*llm.Response, error) {
	return f(ctx, req, onDelta)
}

func (providerFunc) DefaultModel() string { return "test-model" }

type fakeRunner struct {
	mu       sync.Mutex
	requests []executor.Request
	result   *executor.Result
	err      error
}

func (r *fakeRunner) Execute(_ context.Context, req executor.Request) (*executor.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

type fakeRegistry struct {
	tools    []llm.ToolDefinition
	dispatch map[string]*mcp.ToolResult
	calls    []string
}

func (r *fakeRegistry) GetToolDefinitions(context.Context, string) ([]llm.ToolDefinition, error) {
	return r.tools, nil
}

func (r *fakeRegistry) Dispatch(_ context.Context, _, name string, _ map[string]any) (*mcp.ToolResult, error) {
	r.calls = append(r.calls, name)
	if result, ok := r.dispatch[name]; ok {
		return result, nil
	}
	return &mcp.ToolResult{Content: "ok"}, nil
}

func textResponse(text string) *llm.Response {
	return &llm.Response{
		Content:    text,
		StopReason: "end_turn",
		Usage:      llm.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15, CostUSD: 0.001},
	}
}

func toolResponse(id, name string, input map[string]any) *llm.Response {
	return &llm.Response{
		StopReason: "tool_use",
		ToolCalls:  []llm.ToolCall{{ID: id, Name: name, Input: input}},
		Usage:      llm.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15, CostUSD: 0.001},
	}
}

func seedSession(t *testing.T, client *ent.Client) *ent.Session {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, client.Host.Create().
		SetID("host-1").SetOrganizationID("org-1").
		SetName("web-1").SetHostname("web-1.example.com").Exec(ctx))
	sess, err := client.Session.Create().
		SetID("sess-1").SetOrganizationID("org-1").SetUserID("user-1").
		SetHostIds([]string{"host-1"}).
		Save(ctx)
	require.NoError(t, err)
	return sess
}

func messagesFor(t *testing.T, client *ent.Client, sessionID string) []*ent.Message {
	t.Helper()
	msgs, err := client.Message.Query().
		Where(message.SessionID(sessionID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return msgs
}

func TestSendMessagePersistsTurn(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	provider := &scriptedProvider{responses: []*llm.Response{textResponse("All good.")}}
	o := New(client, provider, &fakeRunner{}, nil)

	var deltas []string
	msg, err := o.SendMessageStream(context.Background(), "sess-1", "how are the hosts?", "",
		Callbacks{OnDelta: func(d string) { deltas = append(deltas, d) }})
	require.NoError(t, err)
	assert.Equal(t, "All good.", msg.Content)
	assert.Equal(t, []string{"All good."}, deltas)

	msgs := messagesFor(t, client, "sess-1")
	require.Len(t, msgs, 2)
	assert.Equal(t, message.RoleUser, msgs[0].Role)
	assert.Equal(t, "how are the hosts?", msgs[0].Content)
	assert.Equal(t, message.RoleAssistant, msgs[1].Role)

	sess, err := client.Session.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 15, sess.TotalTokens)
	assert.InDelta(t, 0.001, sess.TotalCost, 1e-9)
	assert.NotNil(t, sess.LastMessageAt)
}

func TestSystemPromptCarriesHostInventory(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	provider := &scriptedProvider{responses: []*llm.Response{textResponse("ok")}}
	o := New(client, provider, &fakeRunner{}, nil)

	_, err := o.SendMessageStream(context.Background(), "sess-1", "hi", "", Callbacks{})
	require.NoError(t, err)

	system := provider.request(0).System
	assert.Contains(t, system, "web-1.example.com")
	assert.Contains(t, system, "id=host-1")
	assert.Contains(t, system, "No policies are assigned")
}

func TestToolLoopRunsCommand(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	provider := &scriptedProvider{responses: []*llm.Response{
		toolResponse("tu_1", ToolRunCommand, map[string]any{
			"hostId": "host-1", "command": "uptime", "reasoning": "load check",
		}),
		textResponse("Load is fine."),
	}}
	runner := &fakeRunner{result: &executor.Result{ExitCode: 0, Stdout: "up 12 days"}}
	o := New(client, provider, runner, nil)

	msg, err := o.SendMessageStream(context.Background(), "sess-1", "check load", "", Callbacks{})
	require.NoError(t, err)
	assert.Equal(t, "Load is fine.", msg.Content)

	require.Len(t, runner.requests, 1)
	assert.Equal(t, "uptime", runner.requests[0].Command)
	assert.Equal(t, "org-1", runner.requests[0].OrgID)
	assert.Equal(t, "sess-1", runner.requests[0].SessionID)
	assert.Equal(t, "load check", runner.requests[0].Reasoning)

	// Second provider call carries the tool result back.
	second := provider.request(1)
	last := second.Messages[len(second.Messages)-1]
	assert.Equal(t, "tool", last.Role)
	assert.Equal(t, "tu_1", last.ToolUseID)
	assert.Contains(t, last.Content, "up 12 days")

	// The stored assistant message keeps an opaque trace of the call.
	assert.Contains(t, msg.ToolCallTrace, ToolRunCommand)
	assert.Contains(t, msg.ToolCallTrace, "uptime")
}

func TestPolicyDenialSurfacesToModel(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	provider := &scriptedProvider{responses: []*llm.Response{
		toolResponse("tu_1", ToolRunCommand, map[string]any{
			"hostId": "host-1", "command": "rm -rf /", "reasoning": "cleanup",
		}),
		textResponse("That command is not allowed."),
	}}
	runner := &fakeRunner{err: &services.PolicyDeniedError{Reason: "Matches denied pattern"}}
	o := New(client, provider, runner, nil)

	_, err := o.SendMessageStream(context.Background(), "sess-1", "clean up", "", Callbacks{})
	require.NoError(t, err)

	second := provider.request(1)
	last := second.Messages[len(second.Messages)-1]
	assert.Contains(t, last.Content, "denied by policy")
	assert.Contains(t, last.Content, "Matches denied pattern")
}

func TestUpdateHostNoteUpserts(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	provider := &scriptedProvider{responses: []*llm.Response{
		toolResponse("tu_1", ToolUpdateHostNote, map[string]any{
			"hostId": "host-1", "content": "nginx config lives in /etc/nginx/custom",
		}),
		textResponse("Noted."),
	}}
	o := New(client, provider, &fakeRunner{}, nil)

	_, err := o.SendMessageStream(context.Background(), "sess-1", "remember this", "", Callbacks{})
	require.NoError(t, err)

	notes, err := client.HostNote.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "host-1", notes[0].HostID)
	assert.Contains(t, notes[0].Content, "/etc/nginx/custom")

	// A second update replaces, not duplicates.
	provider.mu.Lock()
	provider.requests = nil
	provider.responses = []*llm.Response{
		toolResponse("tu_2", ToolUpdateHostNote, map[string]any{
			"hostId": "host-1", "content": "moved to /etc/nginx/main",
		}),
		textResponse("Updated."),
	}
	provider.mu.Unlock()

	_, err = o.SendMessageStream(context.Background(), "sess-1", "update it", "", Callbacks{})
	require.NoError(t, err)

	notes, err = client.HostNote.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Content, "/etc/nginx/main")
}

func TestMcpToolDispatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	registry := &fakeRegistry{
		tools: []llm.ToolDefinition{{Name: "mcp__weather__forecast", InputSchema: map[string]any{"type": "object"}}},
		dispatch: map[string]*mcp.ToolResult{
			"mcp__weather__forecast": {Content: "sunny"},
		},
	}
	provider := &scriptedProvider{responses: []*llm.Response{
		toolResponse("tu_1", "mcp__weather__forecast", map[string]any{"city": "Brno"}),
		textResponse("It will be sunny."),
	}}
	o := New(client, provider, &fakeRunner{}, registry)

	_, err := o.SendMessageStream(context.Background(), "sess-1", "forecast?", "", Callbacks{})
	require.NoError(t, err)

	assert.Equal(t, []string{"mcp__weather__forecast"}, registry.calls)
	second := provider.request(1)
	assert.Contains(t, second.Messages[len(second.Messages)-1].Content, "sunny")

	// The MCP catalog is offered to the model alongside built-in tools.
	names := make([]string, 0, len(provider.request(0).Tools))
	for _, tool := range provider.request(0).Tools {
		names = append(names, tool.Name)
	}
	assert.Contains(t, names, ToolRunCommand)
	assert.Contains(t, names, ToolUpdateHostNote)
	assert.Contains(t, names, "mcp__weather__forecast")
}

func TestUnknownToolReturnsErrorString(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	provider := &scriptedProvider{responses: []*llm.Response{
		toolResponse("tu_1", "bogus_tool", nil),
		textResponse("Sorry, I can't do that."),
	}}
	o := New(client, provider, &fakeRunner{}, nil)

	_, err := o.SendMessageStream(context.Background(), "sess-1", "do something odd", "", Callbacks{})
	require.NoError(t, err)

	second := provider.request(1)
	last := second.Messages[len(second.Messages)-1]
	assert.Contains(t, last.Content, `unknown tool "bogus_tool"`)
}

func TestIterationCapTerminatesTurn(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	// Provider never stops asking for tools.
	provider := &scriptedProvider{responses: []*llm.Response{
		toolResponse("tu_1", ToolRunCommand, map[string]any{
			"hostId": "host-1", "command": "uptime", "reasoning": "again",
		}),
	}}
	runner := &fakeRunner{result: &executor.Result{ExitCode: 0, Stdout: "ok"}}
	o := New(client, provider, runner, nil)

	msg, err := o.SendMessageStream(context.Background(), "sess-1", "loop forever", "", Callbacks{})
	require.NoError(t, err)
	assert.Equal(t, MaxToolIterations, provider.calls())
	assert.Contains(t, msg.Content, "tool-call limit")
}

func TestMaxToolIterationsOverride(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	provider := &scriptedProvider{responses: []*llm.Response{
		toolResponse("tu_1", ToolRunCommand, map[string]any{
			"hostId": "host-1", "command": "uptime", "reasoning": "again",
		}),
	}}
	runner := &fakeRunner{result: &executor.Result{ExitCode: 0, Stdout: "ok"}}
	o := New(client, provider, runner, nil)
	o.SetMaxToolIterations(3)

	msg, err := o.SendMessageStream(context.Background(), "sess-1", "loop forever", "", Callbacks{})
	require.NoError(t, err)
	assert.Equal(t, 3, provider.calls())
	assert.Contains(t, msg.Content, "tool-call limit")
}

func TestTurnDeadlinePersistsTimeoutNotice(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)

	provider := providerFunc(func(ctx context.Context, _ llm.Request, onDelta func(string)) (*llm.Response, error) {
		onDelta("Partial answer")
		<-ctx.Done()
		return nil, ctx.Err()
	})
	o := New(client, provider, &fakeRunner{}, nil)
	o.SetTurnTimeout(50 * time.Millisecond)

	// A deadline expiry finalizes the turn with an explanation, unlike a
	// user cancellation.
	msg, err := o.SendMessageStream(context.Background(), "sess-1", "slow question", "", Callbacks{})
	require.NoError(t, err)
	assert.Contains(t, msg.Content, "ran out of time")
	assert.Contains(t, msg.Content, "Partial answer")
	assert.NotContains(t, msg.Content, CanceledMarker)

	msgs := messagesFor(t, client, "sess-1")
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, "ran out of time")
}

func TestCancellationPersistsPartial(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)

	ctx, cancel := context.WithCancel(context.Background())
	provider := providerFunc(func(ctx context.Context, _ llm.Request, onDelta func(string)) (*llm.Response, error) {
		onDelta("Checking the")
		cancel()
		<-ctx.Done()
		return nil, ctx.Err()
	})
	o := New(client, provider, &fakeRunner{}, nil)

	_, err := o.SendMessageStream(ctx, "sess-1", "long question", "", Callbacks{})
	require.ErrorIs(t, err, context.Canceled)

	msgs := messagesFor(t, client, "sess-1")
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, "Checking the")
	assert.Contains(t, msgs[1].Content, CanceledMarker)
}

func TestModelOverridePassedThrough(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	provider := &scriptedProvider{responses: []*llm.Response{textResponse("ok")}}
	o := New(client, provider, &fakeRunner{}, nil)

	_, err := o.SendMessageStream(context.Background(), "sess-1", "hi", "claude-opus-4-1", Callbacks{})
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-1", provider.request(0).Model)
}

func TestDefaultModelFromPromptSettings(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	require.NoError(t, client.PromptSettings.Create().
		SetID("ps-1").SetOrganizationID("org-1").SetUserID("user-1").
		SetDefaultModel("claude-haiku-4-5").
		Exec(context.Background()))
	provider := &scriptedProvider{responses: []*llm.Response{textResponse("ok")}}
	o := New(client, provider, &fakeRunner{}, nil)

	// No per-request override: the stored default applies.
	_, err := o.SendMessageStream(context.Background(), "sess-1", "hi", "", Callbacks{})
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5", provider.request(0).Model)

	// An explicit override still wins.
	_, err = o.SendMessageStream(context.Background(), "sess-1", "again", "claude-opus-4-1", Callbacks{})
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-1", provider.request(1).Model)
}

func TestSessionNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	provider := &scriptedProvider{responses: []*llm.Response{textResponse("ok")}}
	o := New(client, provider, &fakeRunner{}, nil)

	_, err := o.SendMessageStream(context.Background(), "missing", "hi", "", Callbacks{})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestTitleGeneratedAfterSecondMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	provider := &scriptedProvider{
		responses: []*llm.Response{textResponse("Sure.")},
		title:     "Disk space investigation",
	}
	o := New(client, provider, &fakeRunner{}, nil)

	_, err := o.SendMessageStream(context.Background(), "sess-1", "check disk space", "", Callbacks{})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		sess, err := client.Session.Get(context.Background(), "sess-1")
		return err == nil && sess.Title == "Disk space investigation"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestExcerptCutsOnRuneBoundary(t *testing.T) {
	assert.Equal(t, "short", excerpt("short", 10))
	assert.Equal(t, "a b", excerpt("a\nb", 10))

	// Truncation never splits a multi-byte rune.
	s := strings.Repeat("ü", 10) // 2 bytes each
	out := excerpt(s, 5)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, strings.Repeat("ü", 2)+"...", out)
}

func TestAssembleHistoryTruncatesOldest(t *testing.T) {
	long := strings.Repeat("x", 400) // ~100 tokens each
	var msgs []*ent.Message
	for i := 0; i < 10; i++ {
		msgs = append(msgs, &ent.Message{Role: message.RoleUser, Content: long})
	}

	out := assembleHistory(msgs, 350)
	// Placeholder + the newest messages that fit.
	require.NotEmpty(t, out)
	assert.Contains(t, out[0].Content, "Conversation truncated")
	assert.Less(t, len(out), 11)

	// Small conversations pass through untouched.
	out = assembleHistory(msgs[:2], 0)
	assert.Len(t, out, 2)
	assert.NotContains(t, out[0].Content, "Conversation truncated")
}
