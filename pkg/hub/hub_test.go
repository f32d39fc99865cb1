package hub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/pkg/auth"
	testdb "github.com/infrallm/infrallm/test/database"
)

func seedSession(t *testing.T, client *ent.Client) {
	t.Helper()
	require.NoError(t, client.Session.Create().
		SetID("sess-1").SetOrganizationID("org-1").SetUserID("user-1").
		Exec(context.Background()))
}

// setupHub serves the hub over httptest; the claims func decides who each
// new connection is.
func setupHub(t *testing.T, client *ent.Client, claims *auth.Claims) (*Hub, *httptest.Server) {
	t.Helper()
	h := New(client)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		h.HandleConnection(r.Context(), conn, claims)
	}))
	t.Cleanup(server.Close)
	return h, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, payload any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func userClaims() *auth.Claims {
	return &auth.Claims{UserID: "user-1", OrgID: "org-1", Email: "user@example.com"}
}

func TestConnectionEstablishedAndUserGroup(t *testing.T) {
	client := testdb.NewTestClient(t)
	h, server := setupHub(t, client, userClaims())
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])

	// Connecting auto-joins the private user group.
	assert.Eventually(t, func() bool {
		return h.groupSize(UserGroupPrefix+"user-1") == 1
	}, time.Second, 5*time.Millisecond)
}

func TestJoinSessionAndReceiveBroadcasts(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	h, server := setupHub(t, client, userClaims())
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, map[string]string{"action": "join_session", "session_id": "sess-1"})
	joined := readJSON(t, conn)
	assert.Equal(t, "session.joined", joined["type"])

	h.BroadcastDelta("sess-1", "Hello")
	delta := readJSON(t, conn)
	assert.Equal(t, "assistant.delta", delta["type"])
	assert.Equal(t, "Hello", delta["delta"])

	h.BroadcastTyping("sess-1", true)
	typing := readJSON(t, conn)
	assert.Equal(t, "assistant.typing", typing["type"])
	assert.Equal(t, true, typing["typing"])

	h.BroadcastMessage("sess-1", &ent.Message{ID: "msg-1", Role: "assistant", Content: "done"})
	received := readJSON(t, conn)
	assert.Equal(t, "message.received", received["type"])
	inner, ok := received["message"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "msg-1", inner["id"])
	assert.Equal(t, "done", inner["content"])
}

func TestJoinForeignSessionRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	// Same org, different user.
	claims := &auth.Claims{UserID: "user-2", OrgID: "org-1", Email: "other@example.com"}
	h, server := setupHub(t, client, claims)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, map[string]string{"action": "join_session", "session_id": "sess-1"})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, 0, h.groupSize(SessionGroupPrefix+"sess-1"))
}

func TestSendMessageInvokesChatHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	h, server := setupHub(t, client, userClaims())

	var mu sync.Mutex
	var gotSession, gotContent, gotUser string
	done := make(chan struct{})
	h.SetChatHandler(func(_ context.Context, claims *auth.Claims, sessionID, content string) {
		mu.Lock()
		gotSession, gotContent, gotUser = sessionID, content, claims.UserID
		mu.Unlock()
		close(done)
	})

	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, map[string]string{
		"action": "send_message", "session_id": "sess-1", "content": "check uptime",
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("chat handler never invoked")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "sess-1", gotSession)
	assert.Equal(t, "check uptime", gotContent)
	assert.Equal(t, "user-1", gotUser)
}

func TestSendMessageToForeignSessionRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	claims := &auth.Claims{UserID: "user-2", OrgID: "org-2", Email: "x@example.com"}
	h, server := setupHub(t, client, claims)

	invoked := make(chan struct{}, 1)
	h.SetChatHandler(func(context.Context, *auth.Claims, string, string) {
		invoked <- struct{}{}
	})

	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, map[string]string{
		"action": "send_message", "session_id": "sess-1", "content": "hi",
	})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])

	select {
	case <-invoked:
		t.Fatal("handler must not run for foreign sessions")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRunCommandInvokesCommandHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	h, server := setupHub(t, client, userClaims())

	done := make(chan [2]string, 1)
	h.SetCommandHandler(func(_ context.Context, claims *auth.Claims, hostID, command string) {
		done <- [2]string{hostID, command}
	})

	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, map[string]string{
		"action": "run_command", "host_id": "host-1", "command": "uptime",
	})

	select {
	case got := <-done:
		assert.Equal(t, "host-1", got[0])
		assert.Equal(t, "uptime", got[1])
	case <-time.After(2 * time.Second):
		t.Fatal("command handler never invoked")
	}

	// Missing fields are rejected without invoking the handler.
	writeJSON(t, conn, map[string]string{"action": "run_command", "host_id": "host-1"})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestCommandOutputReachesUserGroup(t *testing.T) {
	client := testdb.NewTestClient(t)
	h, server := setupHub(t, client, userClaims())
	conn := connectWS(t, server)
	readJSON(t, conn)

	require.Eventually(t, func() bool {
		return h.groupSize(UserGroupPrefix+"user-1") == 1
	}, time.Second, 5*time.Millisecond)

	h.SendCommandOutput("user-1", "host-1", "total 12K\n")
	out := readJSON(t, conn)
	assert.Equal(t, "command.output", out["type"])
	assert.Equal(t, "host-1", out["host_id"])
	assert.Equal(t, "total 12K\n", out["chunk"])

	h.SendCommandStatus("user-1", "host-1", "completed", map[string]any{"exit_code": 0})
	status := readJSON(t, conn)
	assert.Equal(t, "command.status", status["type"])
	assert.Equal(t, "completed", status["status"])
}

func TestLeaveSessionStopsBroadcasts(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSession(t, client)
	h, server := setupHub(t, client, userClaims())
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, map[string]string{"action": "join_session", "session_id": "sess-1"})
	readJSON(t, conn)
	writeJSON(t, conn, map[string]string{"action": "leave_session", "session_id": "sess-1"})

	assert.Eventually(t, func() bool {
		return h.groupSize(SessionGroupPrefix+"sess-1") == 0
	}, time.Second, 5*time.Millisecond)

	// Ping still answered: the connection itself is alive.
	writeJSON(t, conn, map[string]string{"action": "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestUnregisterCleansGroups(t *testing.T) {
	client := testdb.NewTestClient(t)
	h, server := setupHub(t, client, userClaims())
	conn := connectWS(t, server)
	readJSON(t, conn)

	require.Eventually(t, func() bool { return h.ActiveConnections() == 1 },
		time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	assert.Eventually(t, func() bool {
		return h.ActiveConnections() == 0 && h.groupSize(UserGroupPrefix+"user-1") == 0
	}, time.Second, 5*time.Millisecond)
}
