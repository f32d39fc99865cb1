package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/pkg/auth"
	"github.com/infrallm/infrallm/pkg/chattask"
	"github.com/infrallm/infrallm/pkg/config"
	"github.com/infrallm/infrallm/pkg/crypto"
	"github.com/infrallm/infrallm/pkg/hub"
	"github.com/infrallm/infrallm/pkg/jobs"
	"github.com/infrallm/infrallm/pkg/models"
	"github.com/infrallm/infrallm/pkg/orchestrator"
	"github.com/infrallm/infrallm/pkg/policy"
	"github.com/infrallm/infrallm/pkg/services"
	testdb "github.com/infrallm/infrallm/test/database"
)

type testEnv struct {
	server        *Server
	client        *ent.Client
	conversations *fakeConversations
	token         string
	orgID         string
	userID        string
}

// fakeConversations records turns instead of calling an LLM.
type fakeConversations struct {
	mu    sync.Mutex
	calls []fakeTurn
}

type fakeTurn struct {
	SessionID string
	Content   string
	Model     string
}

func (f *fakeConversations) SendMessageStream(_ context.Context, sessionID, userMessage, modelOverride string, _ orchestrator.Callbacks) (*ent.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeTurn{SessionID: sessionID, Content: userMessage, Model: modelOverride})
	return &ent.Message{ID: "msg-1", SessionID: sessionID, Role: "assistant", Content: "done"}, nil
}

func (f *fakeConversations) turns() []fakeTurn {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeTurn(nil), f.calls...)
}

// newTestEnv wires a full server over an in-memory database and registers
// one user whose JWT is used for authenticated requests.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	tokens := auth.NewTokenManager("test-secret", "infrallm", "infrallm-api", time.Hour)
	authenticator := auth.NewAuthenticator(tokens, client)
	encryptor, err := crypto.NewEncryptor("test-master-key")
	require.NoError(t, err)
	tasks := chattask.NewManager()
	t.Cleanup(func() { tasks.Shutdown(time.Second) })
	conversations := &fakeConversations{}

	server := NewServer(Deps{
		Config:        &config.Config{TurnDeadline: time.Minute},
		Authenticator: authenticator,

		Users:        services.NewUserService(client, tokens),
		Hosts:        services.NewHostService(client, nil, nil),
		Credentials:  services.NewCredentialService(client, encryptor, nil),
		Policies:     services.NewPolicyService(client, policy.NewEngine(client), nil),
		Sessions:     services.NewSessionService(client, nil),
		Notes:        services.NewNoteService(client),
		Jobs:         services.NewJobService(client),
		McpServers:   services.NewMcpServerService(client, encryptor, nil),
		AccessTokens: services.NewAccessTokenService(client),
		Audit:        services.NewAuditService(client),

		Tasks:         tasks,
		Conversations: conversations,
		JobsEngine:    jobs.NewEngine(client, conversations, tasks),
		Hub:           hub.New(client),
	})

	env := &testEnv{server: server, client: client, conversations: conversations}

	resp := env.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "admin@example.com", "password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var authResp models.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &authResp))
	env.token = authResp.Token
	env.orgID = authResp.User.OrganizationID
	env.userID = authResp.User.ID
	return env
}

// request issues an unauthenticated request against the server.
func (e *testEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

// authed issues a request carrying the registered user's bearer token.
func (e *testEnv) authed(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
