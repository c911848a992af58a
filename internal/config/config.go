package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage drivers the session can persist to.
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type AppConfig struct {
	// Server
	HTTPAddr    string
	AppEnv      string
	CORSOrigins []string

	// Backend REST API
	BackendURL     string
	BackendTimeout time.Duration

	// Session storage
	StorageDriver string
	StoragePath   string
	KeyPrefix     string
	RedisAddr     string
	RedisPass     string
	RedisDB       int
	DatabaseURL   string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		AppEnv:      getEnv("APP_ENV", "production"),
		CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{"http://localhost:5173"}),

		BackendURL:     getEnv("BACKEND_URL", "http://localhost:5000/api"),
		BackendTimeout: getEnvDuration("BACKEND_TIMEOUT", 30*time.Second),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile)),
		StoragePath:   getEnv("STORAGE_PATH", defaultStoragePath()),
		KeyPrefix:     getEnv("STORAGE_KEY_PREFIX", "rental-console:"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPass:     getEnv("REDIS_PASS", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
	}
}

// Validate rejects unknown storage drivers and drivers missing their settings.
func (c AppConfig) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StorageFile:
		if c.StoragePath == "" {
			return fmt.Errorf("STORAGE_PATH is required for the file storage driver")
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis storage driver")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	return nil
}

// IsDevelopment reports whether the console runs in development mode.
func (c AppConfig) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// --- Helper functions ---

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "rental-console", "session.json")
	}
	return filepath.Join(home, ".rental-console", "session.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
