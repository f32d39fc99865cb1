// Package mcp connects the assistant to external MCP (Model Context
// Protocol) servers registered per organization and exposes their tools
// under namespaced names.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/mcpserver"
	"github.com/infrallm/infrallm/pkg/crypto"
	"github.com/infrallm/infrallm/pkg/llm"
	"github.com/infrallm/infrallm/pkg/models"
	"github.com/infrallm/infrallm/pkg/version"
)

const (
	// ToolPrefix namespaces MCP tools in the assistant's tool catalog:
	// mcp__{server}__{tool}.
	ToolPrefix = "mcp__"

	// OperationTimeout bounds a single tool call or tool listing.
	OperationTimeout = 60 * time.Second

	// toolCacheTTL is how long a server's tool listing is memoized.
	toolCacheTTL = 60 * time.Second
)

// NamespacedToolName builds the catalog name for a server's tool.
func NamespacedToolName(serverName, toolName string) string {
	return ToolPrefix + serverName + "__" + toolName
}

// ParseToolName splits a namespaced catalog name back into server and tool.
// Returns ok=false for names outside the mcp__ namespace.
func ParseToolName(name string) (serverName, toolName string, ok bool) {
	rest, found := strings.CutPrefix(name, ToolPrefix)
	if !found {
		return "", "", false
	}
	parts := strings.SplitN(rest, "__", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// ToolResult is the outcome of a dispatched MCP tool call. IsError marks
// tool-level failures the model should see as text rather than aborting
// the conversation.
type ToolResult struct {
	Content string
	IsError bool
}

// connectFunc opens a session to a server. release must be called when the
// caller is done with the session; for cached stdio sessions it is a no-op.
type connectFunc func(ctx context.Context, srv *ent.McpServer) (session *mcpsdk.ClientSession, release func(), err error)

type cachedTools struct {
	tools     []llm.ToolDefinition
	fetchedAt time.Time
}

// Registry resolves an organization's MCP servers from the database, lists
// their tools for the assistant's catalog, and dispatches namespaced tool
// calls.
type Registry struct {
	client    *ent.Client
	encryptor *crypto.Encryptor
	stdio     *StdioCache
	logger    *slog.Logger
	opTimeout time.Duration
	cacheTTL  time.Duration

	toolCacheMu sync.Mutex
	toolCache   map[string]cachedTools // serverID → memoized listing

	connect connectFunc // replaceable in tests
}

// NewRegistry creates a Registry backed by the given database client.
func NewRegistry(client *ent.Client, encryptor *crypto.Encryptor, stdio *StdioCache) *Registry {
	r := &Registry{
		client:    client,
		encryptor: encryptor,
		stdio:     stdio,
		logger:    slog.Default(),
		opTimeout: OperationTimeout,
		cacheTTL:  toolCacheTTL,
		toolCache: make(map[string]cachedTools),
	}
	r.connect = r.dialServer
	return r
}

// SetToolTimeout overrides the per-call and per-listing timeout.
func (r *Registry) SetToolTimeout(d time.Duration) {
	if d > 0 {
		r.opTimeout = d
	}
}

// SetToolCacheTTL overrides how long tool listings stay memoized.
func (r *Registry) SetToolCacheTTL(d time.Duration) {
	if d > 0 {
		r.cacheTTL = d
	}
}

// dialServer opens a session using the server's configured transport.
// Stdio sessions come from the warm cache; HTTP sessions are per-call.
func (r *Registry) dialServer(ctx context.Context, srv *ent.McpServer) (*mcpsdk.ClientSession, func(), error) {
	if srv.TransportType == mcpserver.TransportTypeStdio {
		session, err := r.stdio.Session(ctx, srv)
		if err != nil {
			return nil, nil, err
		}
		return session, func() {}, nil
	}

	apiKey := ""
	if srv.APIKeyEncrypted != "" {
		decrypted, err := r.encryptor.Decrypt(srv.APIKeyEncrypted)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decrypt API key for %q: %w", srv.Name, err)
		}
		apiKey = decrypted
	}

	transport, err := buildTransport(srv, apiKey)
	if err != nil {
		return nil, nil, err
	}

	initCtx, cancel := context.WithTimeout(ctx, InitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		if closer, ok := any(transport).(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, nil, fmt.Errorf("failed to connect to MCP server %q: %w", srv.Name, err)
	}
	return session, func() { _ = session.Close() }, nil
}

// GetToolDefinitions lists tools from every enabled server in the
// organization, namespaced for the assistant's catalog. Servers that fail
// to respond are skipped so one broken endpoint doesn't hide the rest.
func (r *Registry) GetToolDefinitions(ctx context.Context, orgID string) ([]llm.ToolDefinition, error) {
	servers, err := r.client.McpServer.Query().
		Where(
			mcpserver.OrganizationID(orgID),
			mcpserver.IsEnabled(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list MCP servers: %w", err)
	}

	var all []llm.ToolDefinition
	for _, srv := range servers {
		tools, err := r.serverTools(ctx, srv)
		if err != nil {
			r.logger.Warn("Failed to list tools from MCP server",
				"server", srv.Name, "error", err)
			continue
		}
		all = append(all, tools...)
	}
	return all, nil
}

// serverTools returns the server's namespaced tool listing, memoized for
// the cache TTL.
func (r *Registry) serverTools(ctx context.Context, srv *ent.McpServer) ([]llm.ToolDefinition, error) {
	r.toolCacheMu.Lock()
	if cached, ok := r.toolCache[srv.ID]; ok && time.Since(cached.fetchedAt) < r.cacheTTL {
		r.toolCacheMu.Unlock()
		return cached.tools, nil
	}
	r.toolCacheMu.Unlock()

	session, release, err := r.connect(ctx, srv)
	if err != nil {
		return nil, err
	}
	defer release()

	opCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		r.evictStdio(srv)
		return nil, fmt.Errorf("list tools from %q: %w", srv.Name, err)
	}

	tools := make([]llm.ToolDefinition, 0, len(result.Tools))
	for _, tool := range result.Tools {
		tools = append(tools, llm.ToolDefinition{
			Name:        NamespacedToolName(srv.Name, tool.Name),
			Description: tool.Description,
			InputSchema: schemaMap(tool.InputSchema),
		})
	}

	r.toolCacheMu.Lock()
	r.toolCache[srv.ID] = cachedTools{tools: tools, fetchedAt: time.Now()}
	r.toolCacheMu.Unlock()

	return tools, nil
}

// Dispatch executes a namespaced tool call against the owning server.
// Tool-level failures come back as ToolResult.IsError; transport and
// lookup failures are returned as errors.
func (r *Registry) Dispatch(ctx context.Context, orgID, name string, args map[string]any) (*ToolResult, error) {
	serverName, toolName, ok := ParseToolName(name)
	if !ok {
		return nil, fmt.Errorf("not an MCP tool name: %q", name)
	}

	srv, err := r.client.McpServer.Query().
		Where(
			mcpserver.OrganizationID(orgID),
			mcpserver.Name(serverName),
			mcpserver.IsEnabled(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("MCP server %q is not available", serverName)
		}
		return nil, fmt.Errorf("failed to load MCP server %q: %w", serverName, err)
	}

	session, release, err := r.connect(ctx, srv)
	if err != nil {
		return nil, err
	}
	defer release()

	opCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	result, err := session.CallTool(opCtx, &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		// A dead stdio subprocess poisons the warm session; drop it so
		// the next call reconnects.
		r.evictStdio(srv)
		return nil, fmt.Errorf("tool %q on %q: %w", toolName, serverName, err)
	}

	return &ToolResult{
		Content: extractTextContent(result),
		IsError: result.IsError,
	}, nil
}

// TestServer probes a server (enabled or not) by connecting and listing its
// tools. Failures are reported in the response, not as errors, so the API
// can always return a verdict.
func (r *Registry) TestServer(ctx context.Context, orgID, serverID string) *models.McpTestResponse {
	srv, err := r.client.McpServer.Query().
		Where(
			mcpserver.ID(serverID),
			mcpserver.OrganizationID(orgID),
		).
		Only(ctx)
	if err != nil {
		return &models.McpTestResponse{Success: false, Message: "server not found"}
	}

	session, release, err := r.connect(ctx, srv)
	if err != nil {
		return &models.McpTestResponse{Success: false, Message: err.Error()}
	}
	defer release()

	opCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		r.evictStdio(srv)
		return &models.McpTestResponse{Success: false, Message: err.Error()}
	}

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	return &models.McpTestResponse{Success: true, ToolNames: names}
}

// Evict drops any warm session and memoized tool listing for the server.
// Call after the server's configuration changes or it is deleted.
func (r *Registry) Evict(serverID string) {
	if r.stdio != nil {
		r.stdio.Evict(serverID)
	}
	r.toolCacheMu.Lock()
	delete(r.toolCache, serverID)
	r.toolCacheMu.Unlock()
}

func (r *Registry) evictStdio(srv *ent.McpServer) {
	if r.stdio != nil && srv.TransportType == mcpserver.TransportTypeStdio {
		r.stdio.Evict(srv.ID)
	}
}

// extractTextContent concatenates the text blocks of a tool result.
// Non-text content (images, embedded resources) is skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("MCP tool returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", c))
		}
	}
	return strings.Join(parts, "\n")
}

// schemaMap converts a tool's input schema to the generic map shape the
// model API expects. Unparseable schemas degrade to a bare object schema.
func schemaMap(schema any) map[string]any {
	if schema == nil {
		return map[string]any{"type": "object"}
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return map[string]any{"type": "object"}
	}
	return m
}
