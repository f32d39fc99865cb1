package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const streamBody = `event: message_start
data: {"type":"message_start","message":{"usage":{"input_tokens":25,"output_tokens":1}}}

event: content_block_start
data: {"type":"content_block_start","index":0,"content_block":{"type":"text"}}

data: {"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Hello"}}

data: {"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":" world"}}

data: {"type":"content_block_stop","index":0}

data: {"type":"content_block_start","index":1,"content_block":{"type":"tool_use","id":"tu_1","name":"run_command"}}

data: {"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"{\"host"}}

data: {"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"Id\":\"h1\"}"}}

data: {"type":"content_block_stop","index":1}

data: {"type":"message_delta","delta":{"type":"message_delta","stop_reason":"tool_use"},"usage":{"output_tokens":12}}

data: {"type":"message_stop"}
`

func newStreamServer(t *testing.T, handler http.HandlerFunc) *AnthropicClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAnthropicClient(AnthropicConfig{
		APIKey:   "test-key",
		Endpoint: srv.URL,
		Timeout:  5 * time.Second,
	})
}

func TestSendStreamParsesTextAndToolUse(t *testing.T) {
	client := newStreamServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(streamBody))
	})

	var deltas []string
	resp, err := client.SendStream(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	}, func(delta string) {
		deltas = append(deltas, delta)
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello world", resp.Content)
	assert.Equal(t, []string{"Hello", " world"}, deltas)
	assert.Equal(t, "tool_use", resp.StopReason)

	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "tu_1", resp.ToolCalls[0].ID)
	assert.Equal(t, "run_command", resp.ToolCalls[0].Name)
	assert.Equal(t, map[string]any{"hostId": "h1"}, resp.ToolCalls[0].Input)

	assert.Equal(t, 25, resp.Usage.InputTokens)
	assert.Equal(t, 12, resp.Usage.OutputTokens)
	assert.Equal(t, 37, resp.Usage.TotalTokens)
	assert.InDelta(t, 25*3.0/1e6+12*15.0/1e6, resp.Usage.CostUSD, 1e-12)
}

func TestSendStreamRetriesRateLimit(t *testing.T) {
	orig := retryBaseDelay
	retryBaseDelay = 10 * time.Millisecond
	t.Cleanup(func() { retryBaseDelay = orig })

	var calls atomic.Int32
	client := newStreamServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(streamBody))
	})

	resp, err := client.SendStream(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", resp.Content)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSendStreamRateLimitExhausted(t *testing.T) {
	orig := retryBaseDelay
	retryBaseDelay = time.Millisecond
	t.Cleanup(func() { retryBaseDelay = orig })

	var calls atomic.Int32
	client := newStreamServer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.SendStream(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Equal(t, int32(3), calls.Load())
}

func TestSendStreamServerError(t *testing.T) {
	client := newStreamServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	})

	_, err := client.SendStream(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestConvertMessagesToolResult(t *testing.T) {
	out := convertMessages([]Message{
		{Role: "user", Content: "check disk"},
		{Role: "assistant", Content: "running", ToolCalls: []ToolCall{
			{ID: "tu_1", Name: "run_command", Input: map[string]any{"command": "df -h"}},
		}},
		{Role: "tool", ToolUseID: "tu_1", Content: "ok"},
	})

	require.Len(t, out, 3)
	assert.Equal(t, "user", out[0].Role)
	assert.Equal(t, "assistant", out[1].Role)
	require.Len(t, out[1].Content, 2)
	assert.Equal(t, "tool_use", out[1].Content[1].Type)

	// Tool results travel as user messages with tool_result blocks.
	assert.Equal(t, "user", out[2].Role)
	assert.Equal(t, "tool_result", out[2].Content[0].Type)
	assert.Equal(t, "tu_1", out[2].Content[0].ToolUseID)
}

func TestCostUSDByModel(t *testing.T) {
	// 1000 input + 1000 output tokens.
	assert.InDelta(t, 0.018, costUSD("claude-sonnet-4-5-20250929", 1000, 1000), 1e-9)
	assert.InDelta(t, 0.090, costUSD("claude-opus-4-1", 1000, 1000), 1e-9)
	assert.InDelta(t, 0.0048, costUSD("claude-haiku-3-5", 1000, 1000), 1e-9)
	// Unknown models fall back to sonnet pricing.
	assert.InDelta(t, 0.018, costUSD("some-other-model", 1000, 1000), 1e-9)
}
