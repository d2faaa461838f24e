package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GRIDPATH_ADDR", "127.0.0.1:9000")
	t.Setenv("GRIDPATH_CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("GRIDPATH_MAX_CELLS", "400")
	t.Setenv("GRIDPATH_MAX_EXPANSIONS", "50")
	t.Setenv("GRIDPATH_WORKERS", "2")
	t.Setenv("GRIDPATH_RATE_RPS", "1.5")
	t.Setenv("GRIDPATH_RATE_BURST", "not-a-number")
	t.Setenv("GRIDPATH_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 400, cfg.Limits.MaxCells)
	assert.Equal(t, 50, cfg.Limits.MaxExpansions)
	assert.Equal(t, 2, cfg.Limits.Workers)
	assert.Equal(t, 1.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, Default().RateLimit.Burst, cfg.RateLimit.Burst, "unparsable values fall back")
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRIDPATH_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("GRIDPATH_TEST_DOTENV") })

	used, ok := LoadDotEnv(filepath.Join(dir, "missing.env"), path)
	require.True(t, ok)
	assert.Equal(t, path, used)
	assert.Equal(t, "loaded", os.Getenv("GRIDPATH_TEST_DOTENV"))

	_, ok = LoadDotEnv(filepath.Join(dir, "missing.env"))
	assert.False(t, ok)
}
