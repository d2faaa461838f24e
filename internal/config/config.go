// Package config holds the settings of the gridpath service and tools.
// Every value has a default; environment variables override them.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr        string   // Listen address
	CORSOrigins []string // Allowed browser origins
}

// LimitsConfig bounds the work a single request may cause.
type LimitsConfig struct {
	MaxCells      int // Largest accepted width*height
	MaxExpansions int // Per-search expansion budget, 0 means unlimited
	MaxQueries    int // Largest accepted batch
	Workers       int // Concurrent searches per batch request
}

// RateLimitConfig configures the per-IP limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	CleanupInterval   time.Duration
}

// Config is the complete configuration.
type Config struct {
	Server    ServerConfig
	Limits    LimitsConfig
	RateLimit RateLimitConfig
	LogLevel  slog.Level
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
		Limits: LimitsConfig{
			MaxCells:      1 << 20,
			MaxExpansions: 0,
			MaxQueries:    256,
			Workers:       4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
			CleanupInterval:   5 * time.Minute,
		},
		LogLevel: slog.LevelInfo,
	}
}

// LoadDotEnv loads the first .env file found among paths into the process
// environment. Existing variables win. It reports which file was used.
func LoadDotEnv(paths ...string) (string, bool) {
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Load returns Default with environment variable overrides applied.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("GRIDPATH_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("GRIDPATH_CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = splitList(v)
	}
	if n := getEnvInt("GRIDPATH_MAX_CELLS", 0); n > 0 {
		cfg.Limits.MaxCells = n
	}
	if n := getEnvInt("GRIDPATH_MAX_EXPANSIONS", -1); n >= 0 {
		cfg.Limits.MaxExpansions = n
	}
	if n := getEnvInt("GRIDPATH_MAX_QUERIES", 0); n > 0 {
		cfg.Limits.MaxQueries = n
	}
	if n := getEnvInt("GRIDPATH_WORKERS", 0); n > 0 {
		cfg.Limits.Workers = n
	}
	if f := getEnvFloat("GRIDPATH_RATE_RPS", 0); f > 0 {
		cfg.RateLimit.RequestsPerSecond = f
	}
	if n := getEnvInt("GRIDPATH_RATE_BURST", 0); n > 0 {
		cfg.RateLimit.Burst = n
	}
	if v := os.Getenv("GRIDPATH_LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = level
		}
	}

	return cfg
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
