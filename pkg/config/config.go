// Package config loads runtime configuration from the environment.
// A .env file (loaded by the caller via godotenv) can supply any of these.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings not owned by pkg/database.
type Config struct {
	// Environment is "development" or "production".
	Environment string

	// JWT settings.
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTTTL      time.Duration

	// CredentialEncryption master key. Production refuses CHANGE_ME* values.
	MasterKey string

	// LLM provider.
	AnthropicAPIKey string
	DefaultModel    string
	LLMTimeout      time.Duration

	// CORS allowed origins (comma-separated env value).
	AllowedOrigins []string

	// SSH pool.
	SSHConnectTimeout time.Duration
	SSHCommandTimeout time.Duration
	SSHMaxPerHost     int
	SSHIdleTimeout    time.Duration
	SSHKnownHostsFile string

	// Orchestrator caps.
	MaxToolIterations  int
	TurnDeadline       time.Duration
	HistoryTokenBudget int

	// MCP.
	MCPToolTimeout      time.Duration
	MCPToolCacheTTL     time.Duration
	MCPStdioIdleTimeout time.Duration

	// Jobs.
	CronPollInterval time.Duration
	JobRunDeadline   time.Duration

	// Shutdown grace period.
	ShutdownGrace time.Duration

	// Hub write timeout.
	HubWriteTimeout time.Duration
}

// Load reads configuration from the environment, applying defaults.
// Returns an error for settings that are required or malformed.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:         getEnv("APP_ENV", "development"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTIssuer:           getEnv("JWT_ISSUER", "infrallm"),
		JWTAudience:         getEnv("JWT_AUDIENCE", "infrallm"),
		JWTTTL:              getDuration("JWT_TTL", 24*time.Hour),
		MasterKey:           os.Getenv("CREDENTIAL_MASTER_KEY"),
		AnthropicAPIKey:     os.Getenv("ANTHROPIC_API_KEY"),
		DefaultModel:        getEnv("DEFAULT_MODEL", "claude-sonnet-4-5-20250929"),
		LLMTimeout:          getDuration("LLM_REQUEST_TIMEOUT", 5*time.Minute),
		SSHConnectTimeout:   getDuration("SSH_CONNECT_TIMEOUT", 15*time.Second),
		SSHCommandTimeout:   getDuration("SSH_COMMAND_TIMEOUT", 120*time.Second),
		SSHMaxPerHost:       getInt("SSH_MAX_PER_HOST", 4),
		SSHIdleTimeout:      getDuration("SSH_IDLE_TIMEOUT", 10*time.Minute),
		SSHKnownHostsFile:   os.Getenv("SSH_KNOWN_HOSTS_FILE"),
		MaxToolIterations:   getInt("MAX_TOOL_ITERATIONS", 25),
		TurnDeadline:        getDuration("TURN_DEADLINE", 5*time.Minute),
		HistoryTokenBudget:  getInt("HISTORY_TOKEN_BUDGET", 60000),
		MCPToolTimeout:      getDuration("MCP_TOOL_TIMEOUT", 60*time.Second),
		MCPToolCacheTTL:     getDuration("MCP_TOOL_CACHE_TTL", 60*time.Second),
		MCPStdioIdleTimeout: getDuration("MCP_STDIO_IDLE_TIMEOUT", 15*time.Minute),
		CronPollInterval:    getDuration("CRON_POLL_INTERVAL", 30*time.Second),
		JobRunDeadline:      getDuration("JOB_RUN_DEADLINE", 5*time.Minute),
		ShutdownGrace:       getDuration("SHUTDOWN_GRACE", 15*time.Second),
		HubWriteTimeout:     getDuration("HUB_WRITE_TIMEOUT", 10*time.Second),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.MasterKey == "" {
		return nil, fmt.Errorf("CREDENTIAL_MASTER_KEY is required")
	}
	if cfg.IsProduction() && strings.HasPrefix(cfg.MasterKey, "CHANGE_ME") {
		return nil, fmt.Errorf("CREDENTIAL_MASTER_KEY still has the placeholder value; refusing to start in production")
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production hardening.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
