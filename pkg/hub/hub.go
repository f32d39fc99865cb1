// Package hub delivers real-time events over WebSocket: chat streaming to
// session groups and command output to user groups.
package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/session"
	"github.com/infrallm/infrallm/pkg/auth"
)

// Group name prefixes. Every connection auto-joins its user group; session
// groups are joined explicitly and ownership-checked.
const (
	UserGroupPrefix    = "user_"
	SessionGroupPrefix = "session_"
)

// DefaultWriteTimeout bounds one WebSocket send.
const DefaultWriteTimeout = 5 * time.Second

// ChatMessageFunc handles a chat message sent over the socket. It runs on
// the connection's read goroutine; implementations should hand off and
// return quickly.
type ChatMessageFunc func(ctx context.Context, claims *auth.Claims, sessionID, content string)

// CommandRunFunc handles a run_command invocation from the command hub.
// Output is pushed back through SendCommandOutput/SendCommandStatus.
type CommandRunFunc func(ctx context.Context, claims *auth.Claims, hostID, command string)

// clientMessage is what clients send over the socket.
type clientMessage struct {
	Action    string `json:"action"`
	SessionID string `json:"session_id,omitempty"`
	Content   string `json:"content,omitempty"`
	Typing    bool   `json:"typing,omitempty"`
	HostID    string `json:"host_id,omitempty"`
	Command   string `json:"command,omitempty"`
}

// connection is one WebSocket client.
//
// groups is accessed without a lock: all reads and writes happen on the
// goroutine that owns the connection (HandleConnection's read loop and its
// deferred cleanup).
type connection struct {
	id     string
	conn   *websocket.Conn
	claims *auth.Claims
	groups map[string]bool
	ctx    context.Context
	cancel context.CancelFunc
}

// Hub manages WebSocket connections and group subscriptions. One Hub per
// process serves both the chat and command endpoints.
type Hub struct {
	client *ent.Client

	mu          sync.RWMutex
	connections map[string]*connection

	groupMu sync.RWMutex
	groups  map[string]map[string]bool // group → set of connection ids

	chatHandlerMu sync.RWMutex
	chatHandler   ChatMessageFunc

	commandHandlerMu sync.RWMutex
	commandHandler   CommandRunFunc

	writeTimeout time.Duration
	logger       *slog.Logger
}

// New creates a Hub backed by the given database client for session
// ownership checks.
func New(client *ent.Client) *Hub {
	return &Hub{
		client:       client,
		connections:  make(map[string]*connection),
		groups:       make(map[string]map[string]bool),
		writeTimeout: DefaultWriteTimeout,
		logger:       slog.Default(),
	}
}

// SetWriteTimeout overrides the per-send deadline. Call before serving.
func (h *Hub) SetWriteTimeout(d time.Duration) {
	if d > 0 {
		h.writeTimeout = d
	}
}

// SetChatHandler wires the chat pipeline. Called once during startup.
func (h *Hub) SetChatHandler(fn ChatMessageFunc) {
	h.chatHandlerMu.Lock()
	defer h.chatHandlerMu.Unlock()
	h.chatHandler = fn
}

// SetCommandHandler wires direct command execution. Called once during
// startup.
func (h *Hub) SetCommandHandler(fn CommandRunFunc) {
	h.commandHandlerMu.Lock()
	defer h.commandHandlerMu.Unlock()
	h.commandHandler = fn
}

// HandleConnection runs the lifecycle of one authenticated WebSocket
// connection. Blocks until the connection closes.
func (h *Hub) HandleConnection(parentCtx context.Context, conn *websocket.Conn, claims *auth.Claims) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &connection{
		id:     uuid.New().String(),
		conn:   conn,
		claims: claims,
		groups: make(map[string]bool),
		ctx:    ctx,
		cancel: cancel,
	}

	h.register(c)
	defer h.unregister(c)

	// Private notifications reach the user without any explicit join.
	h.joinGroup(c, UserGroupPrefix+claims.UserID)

	h.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.id,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Warn("Invalid WebSocket message",
				"connection_id", c.id, "error", err)
			continue
		}
		h.handleClientMessage(ctx, c, &msg)
	}
}

func (h *Hub) handleClientMessage(ctx context.Context, c *connection, msg *clientMessage) {
	switch msg.Action {
	case "join_session":
		if !h.ownsSession(ctx, c.claims, msg.SessionID) {
			h.sendJSON(c, map[string]string{
				"type":       "error",
				"session_id": msg.SessionID,
				"message":    "session not found",
			})
			return
		}
		h.joinGroup(c, SessionGroupPrefix+msg.SessionID)
		h.sendJSON(c, map[string]string{
			"type":       "session.joined",
			"session_id": msg.SessionID,
		})

	case "leave_session":
		h.leaveGroup(c, SessionGroupPrefix+msg.SessionID)

	case "send_message":
		if msg.Content == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "content is required"})
			return
		}
		if !h.ownsSession(ctx, c.claims, msg.SessionID) {
			h.sendJSON(c, map[string]string{
				"type":       "error",
				"session_id": msg.SessionID,
				"message":    "session not found",
			})
			return
		}
		h.chatHandlerMu.RLock()
		handler := h.chatHandler
		h.chatHandlerMu.RUnlock()
		if handler == nil {
			h.sendJSON(c, map[string]string{"type": "error", "message": "chat is not available"})
			return
		}
		handler(ctx, c.claims, msg.SessionID, msg.Content)

	case "typing":
		if h.ownsSession(ctx, c.claims, msg.SessionID) {
			h.BroadcastTyping(msg.SessionID, msg.Typing)
		}

	case "run_command":
		if msg.HostID == "" || msg.Command == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "host_id and command are required"})
			return
		}
		h.commandHandlerMu.RLock()
		handler := h.commandHandler
		h.commandHandlerMu.RUnlock()
		if handler == nil {
			h.sendJSON(c, map[string]string{"type": "error", "message": "command execution is not available"})
			return
		}
		handler(ctx, c.claims, msg.HostID, msg.Command)

	case "ping":
		h.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// ownsSession reports whether the session exists in the caller's org and
// belongs to the caller.
func (h *Hub) ownsSession(ctx context.Context, claims *auth.Claims, sessionID string) bool {
	if sessionID == "" {
		return false
	}
	ok, err := h.client.Session.Query().
		Where(
			session.ID(sessionID),
			session.OrganizationID(claims.OrgID),
			session.UserID(claims.UserID),
		).
		Exist(ctx)
	return err == nil && ok
}

// BroadcastMessage announces a persisted message to the session group.
func (h *Hub) BroadcastMessage(sessionID string, msg *ent.Message) {
	h.broadcast(SessionGroupPrefix+sessionID, map[string]any{
		"type":       "message.received",
		"session_id": sessionID,
		"message": map[string]any{
			"id":         msg.ID,
			"role":       msg.Role,
			"content":    msg.Content,
			"created_at": msg.CreatedAt,
		},
	})
}

// BroadcastTyping announces assistant (or user) typing state to the
// session group.
func (h *Hub) BroadcastTyping(sessionID string, typing bool) {
	h.broadcast(SessionGroupPrefix+sessionID, map[string]any{
		"type":       "assistant.typing",
		"session_id": sessionID,
		"typing":     typing,
	})
}

// BroadcastDelta streams one chunk of assistant text to the session group.
func (h *Hub) BroadcastDelta(sessionID, delta string) {
	h.broadcast(SessionGroupPrefix+sessionID, map[string]any{
		"type":       "assistant.delta",
		"session_id": sessionID,
		"delta":      delta,
	})
}

// SendCommandOutput streams command output to the originating user.
func (h *Hub) SendCommandOutput(userID, hostID, chunk string) {
	h.broadcast(UserGroupPrefix+userID, map[string]any{
		"type":    "command.output",
		"host_id": hostID,
		"chunk":   chunk,
	})
}

// SendCommandStatus reports command lifecycle changes to the originating
// user.
func (h *Hub) SendCommandStatus(userID, hostID, status string, detail any) {
	h.broadcast(UserGroupPrefix+userID, map[string]any{
		"type":    "command.status",
		"host_id": hostID,
		"status":  status,
		"detail":  detail,
	})
}

// broadcast sends a payload to every connection in the group.
func (h *Hub) broadcast(group string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Warn("Failed to marshal broadcast payload", "error", err)
		return
	}

	h.groupMu.RLock()
	members, exists := h.groups[group]
	if !exists {
		h.groupMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	h.groupMu.RUnlock()

	// Snapshot pointers before sending so slow writes don't hold locks.
	h.mu.RLock()
	conns := make([]*connection, 0, len(ids))
	for _, id := range ids {
		if c, ok := h.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := h.sendRaw(c, data); err != nil {
			h.logger.Warn("Failed to send to WebSocket client",
				"connection_id", c.id, "error", err)
		}
	}
}

// ActiveConnections returns the count of open connections.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// groupSize reports subscriber count for a group. Used by tests to poll.
func (h *Hub) groupSize(group string) int {
	h.groupMu.RLock()
	defer h.groupMu.RUnlock()
	return len(h.groups[group])
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.id] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	delete(h.connections, c.id)
	h.mu.Unlock()

	h.groupMu.Lock()
	for group := range c.groups {
		if members, ok := h.groups[group]; ok {
			delete(members, c.id)
			if len(members) == 0 {
				delete(h.groups, group)
			}
		}
	}
	h.groupMu.Unlock()

	c.cancel()
}

func (h *Hub) joinGroup(c *connection, group string) {
	h.groupMu.Lock()
	if _, ok := h.groups[group]; !ok {
		h.groups[group] = make(map[string]bool)
	}
	h.groups[group][c.id] = true
	h.groupMu.Unlock()
	c.groups[group] = true
}

func (h *Hub) leaveGroup(c *connection, group string) {
	h.groupMu.Lock()
	if members, ok := h.groups[group]; ok {
		delete(members, c.id)
		if len(members) == 0 {
			delete(h.groups, group)
		}
	}
	h.groupMu.Unlock()
	delete(c.groups, group)
}

func (h *Hub) sendJSON(c *connection, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Warn("Failed to marshal payload", "error", err)
		return
	}
	if err := h.sendRaw(c, data); err != nil {
		h.logger.Warn("Failed to send to WebSocket client",
			"connection_id", c.id, "error", err)
	}
}

func (h *Hub) sendRaw(c *connection, data []byte) error {
	ctx, cancel := context.WithTimeout(c.ctx, h.writeTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, data)
}
