package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Pool recycling is not operator-tunable; these defaults keep connections
// fresh across PostgreSQL failovers without churning under steady load.
const (
	connMaxLifetime = 30 * time.Minute
	connMaxIdleTime = 5 * time.Minute
)

// LoadConfigFromEnv reads the DB_* environment variables. Only DB_PORT is
// validated; malformed pool sizes silently fall back to their defaults.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(envOr("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	return Config{
		Host:            envOr("DB_HOST", "localhost"),
		Port:            port,
		User:            envOr("DB_USER", "infrallm"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        envOr("DB_NAME", "infrallm"),
		SSLMode:         envOr("DB_SSLMODE", "disable"),
		MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: connMaxLifetime,
		ConnMaxIdleTime: connMaxIdleTime,
	}, nil
}

func envOr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultVal
}
