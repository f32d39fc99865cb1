// InfraLLM server: REST API, WebSocket hubs, the LLM orchestrator and the
// cron/webhook job engine in one process.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/infrallm/infrallm/ent/mcpserver"
	"github.com/infrallm/infrallm/pkg/api"
	"github.com/infrallm/infrallm/pkg/audit"
	"github.com/infrallm/infrallm/pkg/auth"
	"github.com/infrallm/infrallm/pkg/chattask"
	"github.com/infrallm/infrallm/pkg/config"
	"github.com/infrallm/infrallm/pkg/crypto"
	"github.com/infrallm/infrallm/pkg/database"
	"github.com/infrallm/infrallm/pkg/executor"
	"github.com/infrallm/infrallm/pkg/hub"
	"github.com/infrallm/infrallm/pkg/jobs"
	"github.com/infrallm/infrallm/pkg/llm"
	"github.com/infrallm/infrallm/pkg/mcp"
	"github.com/infrallm/infrallm/pkg/orchestrator"
	"github.com/infrallm/infrallm/pkg/policy"
	"github.com/infrallm/infrallm/pkg/services"
	"github.com/infrallm/infrallm/pkg/sshpool"
	"github.com/infrallm/infrallm/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "."),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting InfraLLM", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to the database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Credential encryption and authentication
	encryptor, err := crypto.NewEncryptor(cfg.MasterKey)
	if err != nil {
		slog.Error("Failed to initialize credential encryption", "error", err)
		os.Exit(1)
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)
	authenticator := auth.NewAuthenticator(tokens, dbClient.Client)
	auditor := audit.NewLogger(dbClient.Client)

	// 4. SSH pool and policy-gated executor
	pool := sshpool.NewPool(
		services.NewTargetResolver(dbClient.Client, encryptor),
		sshpool.Config{
			ConnectTimeout: cfg.SSHConnectTimeout,
			MaxPerHost:     cfg.SSHMaxPerHost,
			IdleTimeout:    cfg.SSHIdleTimeout,
			KnownHostsFile: cfg.SSHKnownHostsFile,
		},
	)
	defer pool.Close()
	policyEngine := policy.NewEngine(dbClient.Client)
	commands := executor.New(dbClient.Client, policyEngine, pool, auditor, cfg.SSHCommandTimeout)
	slog.Info("SSH pool and executor initialized", "max_per_host", cfg.SSHMaxPerHost)

	// 5. LLM provider and MCP registry
	provider := llm.NewAnthropicClient(llm.AnthropicConfig{
		APIKey:  cfg.AnthropicAPIKey,
		Model:   cfg.DefaultModel,
		Timeout: cfg.LLMTimeout,
	})
	stdio := mcp.NewStdioCache()
	stdio.SetIdleTimeout(cfg.MCPStdioIdleTimeout)
	defer stdio.Close()
	registry := mcp.NewRegistry(dbClient.Client, encryptor, stdio)
	registry.SetToolTimeout(cfg.MCPToolTimeout)
	registry.SetToolCacheTTL(cfg.MCPToolCacheTTL)

	// Warm stdio servers so the first tool call doesn't pay process startup.
	stdioServers, err := dbClient.Client.McpServer.Query().
		Where(
			mcpserver.TransportTypeEQ(mcpserver.TransportTypeStdio),
			mcpserver.IsEnabled(true),
		).
		All(ctx)
	if err != nil {
		slog.Warn("Failed to list stdio MCP servers for warmup", "error", err)
	} else if len(stdioServers) > 0 {
		stdio.Warmup(ctx, stdioServers)
		slog.Info("MCP stdio servers warmed", "count", len(stdioServers))
	}

	// 6. Orchestrator and chat task manager
	conversations := orchestrator.New(dbClient.Client, provider, commands, registry)
	conversations.SetHistoryBudget(cfg.HistoryTokenBudget)
	conversations.SetMaxToolIterations(cfg.MaxToolIterations)
	conversations.SetTurnTimeout(cfg.TurnDeadline)
	tasks := chattask.NewManager()
	slog.Info("Orchestrator initialized", "model", provider.DefaultModel())

	// 7. Job engine and cron scheduler
	jobsEngine := jobs.NewEngine(dbClient.Client, conversations, tasks)
	jobsEngine.SetRunDeadline(cfg.JobRunDeadline)
	scheduler := jobs.NewScheduler(dbClient.Client, jobsEngine)
	scheduler.SetPollInterval(cfg.CronPollInterval)
	schedCtx, stopScheduler := context.WithCancel(ctx)
	go scheduler.Run(schedCtx)
	slog.Info("Cron scheduler started", "poll_interval", cfg.CronPollInterval)

	// 8. WebSocket hub and HTTP server
	wsHub := hub.New(dbClient.Client)
	wsHub.SetWriteTimeout(cfg.HubWriteTimeout)

	httpServer := api.NewServer(api.Deps{
		Config:        cfg,
		DB:            dbClient.DB(),
		Authenticator: authenticator,

		Users:        services.NewUserService(dbClient.Client, tokens),
		Hosts:        services.NewHostService(dbClient.Client, pool, auditor),
		Credentials:  services.NewCredentialService(dbClient.Client, encryptor, auditor),
		Policies:     services.NewPolicyService(dbClient.Client, policyEngine, auditor),
		Sessions:     services.NewSessionService(dbClient.Client, auditor),
		Notes:        services.NewNoteService(dbClient.Client),
		Jobs:         services.NewJobService(dbClient.Client),
		McpServers:   services.NewMcpServerService(dbClient.Client, encryptor, registry),
		AccessTokens: services.NewAccessTokenService(dbClient.Client),
		Audit:        services.NewAuditService(dbClient.Client),

		Registry:      registry,
		Executor:      commands,
		Conversations: conversations,
		Tasks:         tasks,
		JobsEngine:    jobsEngine,
		Hub:           wsHub,
	})

	// 9. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("InfraLLM started successfully", "environment", cfg.Environment)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop firing new jobs, then drain in-flight
	// chat and job turns, then stop the HTTP server.
	stopScheduler()

	if tasks.Shutdown(cfg.ShutdownGrace) {
		slog.Info("Chat and job tasks drained")
	} else {
		slog.Warn("Shutdown grace exceeded, abandoning in-flight turns")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
