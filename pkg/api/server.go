// Package api exposes the HTTP surface: REST endpoints, the WebSocket hubs
// and the unauthenticated webhook ingress.
package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/pkg/auth"
	"github.com/infrallm/infrallm/pkg/chattask"
	"github.com/infrallm/infrallm/pkg/config"
	"github.com/infrallm/infrallm/pkg/executor"
	"github.com/infrallm/infrallm/pkg/hub"
	"github.com/infrallm/infrallm/pkg/jobs"
	"github.com/infrallm/infrallm/pkg/mcp"
	"github.com/infrallm/infrallm/pkg/orchestrator"
	"github.com/infrallm/infrallm/pkg/services"
)

// Conversations drives one chat turn. Satisfied by *orchestrator.Orchestrator.
type Conversations interface {
	SendMessageStream(ctx context.Context, sessionID, userMessage, modelOverride string, cb orchestrator.Callbacks) (*ent.Message, error)
}

// CommandStreamer executes a command with streaming output. Satisfied by
// *executor.Executor.
type CommandStreamer interface {
	ExecuteStream(ctx context.Context, req executor.Request, onChunk func(string)) (*executor.Result, error)
}

// Deps carries everything the HTTP server needs. All fields are required
// unless noted.
type Deps struct {
	Config        *config.Config
	DB            *sql.DB // health checks; nil disables the database probe
	Authenticator *auth.Authenticator

	Users        *services.UserService
	Hosts        *services.HostService
	Credentials  *services.CredentialService
	Policies     *services.PolicyService
	Sessions     *services.SessionService
	Notes        *services.NoteService
	Jobs         *services.JobService
	McpServers   *services.McpServerService
	AccessTokens *services.AccessTokenService
	Audit        *services.AuditService

	Registry      *mcp.Registry // MCP test endpoint; nil disables it
	Executor      CommandStreamer
	Conversations Conversations
	Tasks         *chattask.Manager
	JobsEngine    *jobs.Engine
	Hub           *hub.Hub
}

// Server is the HTTP server.
type Server struct {
	deps   Deps
	echo   *echo.Echo
	http   *http.Server
	logger *slog.Logger
}

// NewServer builds the router and wires the hub handlers.
func NewServer(deps Deps) *Server {
	s := &Server{
		deps:   deps,
		echo:   echo.New(),
		logger: slog.Default(),
	}
	s.echo.HTTPErrorHandler = httpErrorHandler
	s.registerRoutes()

	if deps.Hub != nil {
		deps.Hub.SetChatHandler(s.handleChatMessage)
		deps.Hub.SetCommandHandler(s.handleCommandRun)
	}
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(requestLogger(s.logger))
	e.Use(securityHeaders())
	if s.deps.Config != nil {
		e.Use(corsMiddleware(s.deps.Config.AllowedOrigins))
	}

	e.GET("/healthz", s.healthHandler)

	// Unauthenticated surface.
	e.POST("/api/auth/register", s.registerHandler)
	e.POST("/api/auth/login", s.loginHandler)
	e.POST("/api/jobs/webhook/:jobId", s.jobWebhookHandler)

	// Everything else requires credentials.
	api := e.Group("/api", requireAuth(s.deps.Authenticator))
	api.GET("/auth/me", s.meHandler)

	api.GET("/hosts", s.listHostsHandler)
	api.POST("/hosts", s.createHostHandler)
	api.GET("/hosts/:id", s.getHostHandler)
	api.PUT("/hosts/:id", s.updateHostHandler)
	api.DELETE("/hosts/:id", s.deleteHostHandler)
	api.POST("/hosts/:id/test-connection", s.testHostConnectionHandler)
	api.GET("/hosts/:id/note", s.getHostNoteHandler)
	api.PUT("/hosts/:id/note", s.putHostNoteHandler)
	api.POST("/hosts/:id/note/refresh", s.refreshHostNoteHandler)

	api.GET("/credentials", s.listCredentialsHandler)
	api.POST("/credentials", s.createCredentialHandler)
	api.DELETE("/credentials/:id", s.deleteCredentialHandler)

	api.GET("/policies", s.listPoliciesHandler)
	api.POST("/policies", s.createPolicyHandler)
	api.GET("/policies/presets", s.policyPresetsHandler)
	api.GET("/policies/:id", s.getPolicyHandler)
	api.PUT("/policies/:id", s.updatePolicyHandler)
	api.DELETE("/policies/:id", s.deletePolicyHandler)
	api.POST("/policies/:id/test", s.testPolicyHandler)
	api.GET("/policies/:id/assignments", s.listAssignmentsHandler)
	api.POST("/policies/:id/assignments", s.createAssignmentHandler)
	api.DELETE("/policies/:id/assignments/:aid", s.deleteAssignmentHandler)

	api.GET("/jobs", s.listJobsHandler)
	api.POST("/jobs", s.createJobHandler)
	api.GET("/jobs/:id", s.getJobHandler)
	api.PUT("/jobs/:id", s.updateJobHandler)
	api.DELETE("/jobs/:id", s.deleteJobHandler)
	api.POST("/jobs/:id/run", s.runJobHandler)
	api.GET("/jobs/:id/runs", s.listJobRunsHandler)

	api.GET("/mcp", s.listMcpServersHandler)
	api.POST("/mcp", s.createMcpServerHandler)
	api.GET("/mcp/:id", s.getMcpServerHandler)
	api.PUT("/mcp/:id", s.updateMcpServerHandler)
	api.DELETE("/mcp/:id", s.deleteMcpServerHandler)
	api.POST("/mcp/:id/test", s.testMcpServerHandler)

	api.GET("/sessions", s.listSessionsHandler)
	api.POST("/sessions", s.createSessionHandler)
	api.GET("/sessions/:id", s.getSessionHandler)
	api.DELETE("/sessions/:id", s.deleteSessionHandler)
	api.GET("/sessions/:id/messages", s.listMessagesHandler)
	api.POST("/sessions/:id/messages", s.sendMessageHandler)
	api.POST("/sessions/:id/cancel", s.cancelSessionHandler)

	api.GET("/prompt-settings", s.getPromptSettingsHandler)
	api.PUT("/prompt-settings", s.updatePromptSettingsHandler)

	api.GET("/access-tokens", s.listAccessTokensHandler)
	api.POST("/access-tokens", s.createAccessTokenHandler)
	api.POST("/access-tokens/:id/revoke", s.revokeAccessTokenHandler)
	api.DELETE("/access-tokens/:id", s.deleteAccessTokenHandler)

	api.GET("/audit", s.auditSearchHandler)

	// WebSocket hubs share the auth middleware; tokens arrive as query
	// parameters there.
	hubs := e.Group("/hubs", requireAuth(s.deps.Authenticator))
	hubs.GET("/chat", s.wsHandler)
	hubs.GET("/command", s.wsHandler)
}

// Start serves HTTP on addr. Blocks until Shutdown or failure.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
