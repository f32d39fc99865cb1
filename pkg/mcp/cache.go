package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/pkg/version"
)

const (
	// InitTimeout bounds the MCP handshake for a single server.
	InitTimeout = 30 * time.Second

	// StdioIdleTimeout is how long an unused stdio session (and its child
	// process) stays warm before the janitor closes it.
	StdioIdleTimeout = 15 * time.Minute

	janitorInterval = time.Minute
)

type stdioEntry struct {
	session  *mcpsdk.ClientSession
	lastUsed time.Time
}

// StdioCache keeps warm sessions for stdio MCP servers. Spawning a child
// process and handshaking on every tool call would be prohibitively slow, so
// sessions persist across calls and are reaped after StdioIdleTimeout.
//
// HTTP servers are not cached here; those sessions are cheap and created
// per call.
type StdioCache struct {
	mu          sync.Mutex
	entries     map[string]*stdioEntry // serverID → warm session
	stop        chan struct{}
	stopped     sync.Once
	idleTimeout time.Duration

	// Per-server mutex so concurrent callers don't spawn duplicate
	// subprocesses for the same server.
	initMu sync.Map // serverID → *sync.Mutex

	logger *slog.Logger
}

// NewStdioCache creates the cache and starts its idle janitor.
func NewStdioCache() *StdioCache {
	c := &StdioCache{
		entries:     make(map[string]*stdioEntry),
		stop:        make(chan struct{}),
		idleTimeout: StdioIdleTimeout,
		logger:      slog.Default(),
	}
	go c.janitor()
	return c
}

// SetIdleTimeout overrides how long an unused stdio session stays warm.
func (c *StdioCache) SetIdleTimeout(d time.Duration) {
	if d > 0 {
		c.idleTimeout = d
	}
}

// Session returns a warm session for the server, connecting if needed.
func (c *StdioCache) Session(ctx context.Context, srv *ent.McpServer) (*mcpsdk.ClientSession, error) {
	muI, _ := c.initMu.LoadOrStore(srv.ID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	c.mu.Lock()
	if e, ok := c.entries[srv.ID]; ok {
		e.lastUsed = time.Now()
		c.mu.Unlock()
		return e.session, nil
	}
	c.mu.Unlock()

	transport, err := buildStdioTransport(srv)
	if err != nil {
		return nil, err
	}

	initCtx, cancel := context.WithTimeout(ctx, InitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// Close the transport if it implements io.Closer so a failed
		// handshake doesn't leak the child process.
		if closer, ok := any(transport).(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("failed to connect to MCP server %q: %w", srv.Name, err)
	}

	c.mu.Lock()
	c.entries[srv.ID] = &stdioEntry{session: session, lastUsed: time.Now()}
	c.mu.Unlock()

	c.logger.Info("MCP stdio server connected", "server", srv.Name)
	return session, nil
}

// Evict closes and removes the server's warm session, if any. Call after a
// failed tool call or when the server's configuration changes.
func (c *StdioCache) Evict(serverID string) {
	c.mu.Lock()
	e, ok := c.entries[serverID]
	delete(c.entries, serverID)
	c.mu.Unlock()
	if ok {
		_ = e.session.Close()
	}
}

// Warmup connects the given servers eagerly so the first tool call doesn't
// pay process-spawn latency. Failures are logged, not fatal.
func (c *StdioCache) Warmup(ctx context.Context, servers []*ent.McpServer) {
	for _, srv := range servers {
		if _, err := c.Session(ctx, srv); err != nil {
			c.logger.Warn("MCP stdio warmup failed",
				"server", srv.Name, "error", err)
		}
	}
}

// Close stops the janitor and closes every warm session.
func (c *StdioCache) Close() {
	c.stopped.Do(func() { close(c.stop) })

	c.mu.Lock()
	entries := c.entries
	c.entries = make(map[string]*stdioEntry)
	c.mu.Unlock()

	for _, e := range entries {
		_ = e.session.Close()
	}
}

func (c *StdioCache) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.reapIdle(time.Now())
		}
	}
}

func (c *StdioCache) reapIdle(now time.Time) {
	var stale []*stdioEntry
	c.mu.Lock()
	for id, e := range c.entries {
		if now.Sub(e.lastUsed) > c.idleTimeout {
			stale = append(stale, e)
			delete(c.entries, id)
		}
	}
	c.mu.Unlock()
	for _, e := range stale {
		_ = e.session.Close()
	}
}
