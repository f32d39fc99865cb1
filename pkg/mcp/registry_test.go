package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/mcpserver"
	testdb "github.com/infrallm/infrallm/test/database"
)

var emptySchema = json.RawMessage(`{"type":"object"}`)

// startTestServer runs an in-memory MCP server with the given tools and
// returns a connected session for it.
func startTestServer(t *testing.T, name string, tools map[string]mcpsdk.ToolHandler) *mcpsdk.ClientSession {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name: name, Version: "test",
	}, nil)
	for toolName, handler := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        toolName,
			Description: "test tool: " + toolName,
			InputSchema: emptySchema,
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
	go func() {
		_ = server.Run(context.Background(), serverTransport)
	}()

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name: "infrallm-test", Version: "test",
	}, nil)
	session, err := sdkClient.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

// argsMap decodes a handler's raw arguments into a map regardless of the
// concrete type the SDK delivers them as.
func argsMap(t *testing.T, req *mcpsdk.CallToolRequest) map[string]any {
	t.Helper()
	data, err := json.Marshal(req.Params.Arguments)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}
}

func seedServer(t *testing.T, client *ent.Client, name string) *ent.McpServer {
	t.Helper()
	srv, err := client.McpServer.Create().
		SetID("mcp-" + name).
		SetOrganizationID("org-1").
		SetName(name).
		SetTransportType(mcpserver.TransportTypeHTTP).
		SetBaseURL("http://" + name + ".internal").
		Save(context.Background())
	require.NoError(t, err)
	return srv
}

// newTestRegistry wires a Registry whose connections are routed by server
// name to in-memory sessions instead of real transports.
func newTestRegistry(t *testing.T, sessions map[string]*mcpsdk.ClientSession) (*Registry, *atomic.Int32) {
	t.Helper()
	client := testdb.NewTestClient(t)
	r := NewRegistry(client, nil, nil)

	var connects atomic.Int32
	r.connect = func(_ context.Context, srv *ent.McpServer) (*mcpsdk.ClientSession, func(), error) {
		connects.Add(1)
		session, ok := sessions[srv.Name]
		if !ok {
			return nil, nil, errors.New("connection refused")
		}
		return session, func() {}, nil
	}
	return r, &connects
}

func TestParseToolName(t *testing.T) {
	tests := []struct {
		name       string
		wantServer string
		wantTool   string
		wantOK     bool
	}{
		{"mcp__weather__forecast", "weather", "forecast", true},
		{"mcp__weather__get__forecast", "weather", "get__forecast", true},
		{"run_command", "", "", false},
		{"mcp__weather", "", "", false},
		{"mcp____forecast", "", "", false},
		{"mcp__weather__", "", "", false},
	}
	for _, tt := range tests {
		server, tool, ok := ParseToolName(tt.name)
		assert.Equal(t, tt.wantOK, ok, tt.name)
		assert.Equal(t, tt.wantServer, server, tt.name)
		assert.Equal(t, tt.wantTool, tool, tt.name)
	}
}

func TestNamespacedToolName(t *testing.T) {
	assert.Equal(t, "mcp__weather__forecast", NamespacedToolName("weather", "forecast"))
}

func TestGetToolDefinitionsNamespacesTools(t *testing.T) {
	session := startTestServer(t, "weather", map[string]mcpsdk.ToolHandler{
		"forecast": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
		"current": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})
	r, _ := newTestRegistry(t, map[string]*mcpsdk.ClientSession{"weather": session})
	seedServer(t, r.client, "weather")

	tools, err := r.GetToolDefinitions(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, tools, 2)

	names := []string{tools[0].Name, tools[1].Name}
	assert.Contains(t, names, "mcp__weather__forecast")
	assert.Contains(t, names, "mcp__weather__current")
	assert.Equal(t, "object", tools[0].InputSchema["type"])
}

func TestGetToolDefinitionsSkipsFailingServer(t *testing.T) {
	session := startTestServer(t, "weather", map[string]mcpsdk.ToolHandler{
		"forecast": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})
	r, _ := newTestRegistry(t, map[string]*mcpsdk.ClientSession{"weather": session})
	seedServer(t, r.client, "weather")
	seedServer(t, r.client, "broken")

	tools, err := r.GetToolDefinitions(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "mcp__weather__forecast", tools[0].Name)
}

func TestGetToolDefinitionsIgnoresDisabledServers(t *testing.T) {
	r, connects := newTestRegistry(t, nil)
	srv := seedServer(t, r.client, "weather")
	_, err := srv.Update().SetIsEnabled(false).Save(context.Background())
	require.NoError(t, err)

	tools, err := r.GetToolDefinitions(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Empty(t, tools)
	assert.Equal(t, int32(0), connects.Load())
}

func TestDispatchCallsTool(t *testing.T) {
	session := startTestServer(t, "weather", map[string]mcpsdk.ToolHandler{
		"forecast": func(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			args := argsMap(t, req)
			return textResult(fmt.Sprintf("forecast for %v: sunny", args["city"])), nil
		},
	})
	r, _ := newTestRegistry(t, map[string]*mcpsdk.ClientSession{"weather": session})
	seedServer(t, r.client, "weather")

	result, err := r.Dispatch(context.Background(), "org-1", "mcp__weather__forecast",
		map[string]any{"city": "Brno"})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "forecast for Brno: sunny", result.Content)
}

func TestDispatchToolError(t *testing.T) {
	session := startTestServer(t, "weather", map[string]mcpsdk.ToolHandler{
		"forecast": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				IsError: true,
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "upstream unavailable"}},
			}, nil
		},
	})
	r, _ := newTestRegistry(t, map[string]*mcpsdk.ClientSession{"weather": session})
	seedServer(t, r.client, "weather")

	result, err := r.Dispatch(context.Background(), "org-1", "mcp__weather__forecast", nil)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "upstream unavailable", result.Content)
}

func TestDispatchUnknownServer(t *testing.T) {
	r, _ := newTestRegistry(t, nil)

	_, err := r.Dispatch(context.Background(), "org-1", "mcp__missing__forecast", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestDispatchRejectsForeignName(t *testing.T) {
	r, _ := newTestRegistry(t, nil)

	_, err := r.Dispatch(context.Background(), "org-1", "run_command", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an MCP tool name")
}

func TestDispatchDisabledServerNotAvailable(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	srv := seedServer(t, r.client, "weather")
	_, err := srv.Update().SetIsEnabled(false).Save(context.Background())
	require.NoError(t, err)

	_, err = r.Dispatch(context.Background(), "org-1", "mcp__weather__forecast", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestToolListingMemoized(t *testing.T) {
	session := startTestServer(t, "weather", map[string]mcpsdk.ToolHandler{
		"forecast": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})
	r, connects := newTestRegistry(t, map[string]*mcpsdk.ClientSession{"weather": session})
	seedServer(t, r.client, "weather")

	for range 3 {
		_, err := r.GetToolDefinitions(context.Background(), "org-1")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), connects.Load())
}

func TestToolCacheTTLOverride(t *testing.T) {
	session := startTestServer(t, "weather", map[string]mcpsdk.ToolHandler{
		"forecast": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})
	r, connects := newTestRegistry(t, map[string]*mcpsdk.ClientSession{"weather": session})
	r.SetToolCacheTTL(time.Nanosecond)
	seedServer(t, r.client, "weather")

	_, err := r.GetToolDefinitions(context.Background(), "org-1")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = r.GetToolDefinitions(context.Background(), "org-1")
	require.NoError(t, err)

	// The shortened TTL expires between calls, so the listing is refetched.
	assert.Equal(t, int32(2), connects.Load())
}

func TestEvictDropsMemoizedTools(t *testing.T) {
	session := startTestServer(t, "weather", map[string]mcpsdk.ToolHandler{
		"forecast": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})
	r, connects := newTestRegistry(t, map[string]*mcpsdk.ClientSession{"weather": session})
	srv := seedServer(t, r.client, "weather")

	_, err := r.GetToolDefinitions(context.Background(), "org-1")
	require.NoError(t, err)
	r.Evict(srv.ID)
	_, err = r.GetToolDefinitions(context.Background(), "org-1")
	require.NoError(t, err)

	assert.Equal(t, int32(2), connects.Load())
}

func TestTestServerReportsTools(t *testing.T) {
	session := startTestServer(t, "weather", map[string]mcpsdk.ToolHandler{
		"forecast": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})
	r, _ := newTestRegistry(t, map[string]*mcpsdk.ClientSession{"weather": session})
	srv := seedServer(t, r.client, "weather")

	resp := r.TestServer(context.Background(), "org-1", srv.ID)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"forecast"}, resp.ToolNames)
}

func TestTestServerReportsFailure(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	srv := seedServer(t, r.client, "weather")

	resp := r.TestServer(context.Background(), "org-1", srv.ID)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "connection refused")

	resp = r.TestServer(context.Background(), "org-1", "missing")
	assert.False(t, resp.Success)
	assert.Equal(t, "server not found", resp.Message)
}

func TestSchemaMap(t *testing.T) {
	m := schemaMap(json.RawMessage(`{"type":"object","properties":{"city":{"type":"string"}}}`))
	assert.Equal(t, "object", m["type"])
	assert.Contains(t, m, "properties")

	assert.Equal(t, map[string]any{"type": "object"}, schemaMap(nil))
	assert.Equal(t, map[string]any{"type": "object"}, schemaMap(json.RawMessage(`"not an object"`)))
}
