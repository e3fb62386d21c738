package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv_AllVariables(t *testing.T) {
	noDotenv(t)
	t.Setenv("MULTITOOL_SERVER_URL", "https://api.example.org")
	t.Setenv("MULTITOOL_DB_PATH", "/tmp/x.db")
	t.Setenv("MULTITOOL_EPHEMERAL", "true")
	t.Setenv("MULTITOOL_LOG_LEVEL", "error")
	t.Setenv("MULTITOOL_LOG_FORMAT", "json")
	t.Setenv("MULTITOOL_REQUEST_TIMEOUT", "15s")
	t.Setenv("MULTITOOL_DOWNLOAD_DIR", "/tmp/dl")

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, applyEnv(&cfg))

	assert.Equal(t, "https://api.example.org", cfg.ServerURL)
	assert.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	assert.True(t, cfg.Ephemeral)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/dl", cfg.DownloadDir)
}

func TestApplyEnv_BadValues(t *testing.T) {
	noDotenv(t)

	t.Run("ephemeral", func(t *testing.T) {
		t.Setenv("MULTITOOL_EPHEMERAL", "maybe")
		var cfg Config
		require.Error(t, applyEnv(&cfg))
	})

	t.Run("timeout", func(t *testing.T) {
		t.Setenv("MULTITOOL_REQUEST_TIMEOUT", "soon")
		var cfg Config
		require.Error(t, applyEnv(&cfg))
	})
}

func TestApplyEnv_DotenvFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(f, []byte("MULTITOOL_LOG_FORMAT=json\n"), 0o600))

	orig := dotenvFiles
	dotenvFiles = []string{f, filepath.Join(dir, "missing.env")}
	t.Cleanup(func() {
		dotenvFiles = orig
		_ = os.Unsetenv("MULTITOOL_LOG_FORMAT")
	})

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, applyEnv(&cfg))
	assert.Equal(t, "json", cfg.LogFormat)
}
