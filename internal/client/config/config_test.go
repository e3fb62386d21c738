package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noDotenv(t *testing.T) {
	t.Helper()
	orig := dotenvFiles
	dotenvFiles = nil
	t.Cleanup(func() { dotenvFiles = orig })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		ServerURL:    "http://localhost:8000",
		DatabasePath: "multitool.db",
		LogLevel:     "info",
		LogFormat:    "console",
		DownloadDir:  "downloads",
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var c Config
		c.LoadDefaults()
		return c
	}

	c := base()
	require.NoError(t, c.Validate())

	c = base()
	c.ServerURL = "localhost:8000"
	require.Error(t, c.Validate())

	c = base()
	c.ServerURL = "ftp://example.org"
	require.Error(t, c.Validate())

	c = base()
	c.DatabasePath = ""
	require.Error(t, c.Validate())
	c.Ephemeral = true
	require.NoError(t, c.Validate())

	c = base()
	c.RequestTimeout = -time.Second
	require.Error(t, c.Validate())
}

func TestLoad_NilFlagSetUsesDefaults(t *testing.T) {
	noDotenv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
}

func TestLoad_Precedence(t *testing.T) {
	noDotenv(t)
	t.Setenv("MULTITOOL_SERVER_URL", "http://env:1")
	t.Setenv("MULTITOOL_LOG_LEVEL", "debug")
	t.Setenv("MULTITOOL_DOWNLOAD_DIR", "env-dl")

	path := writeTempJSON(t, map[string]any{
		"server_url": "http://json:2",
		"log_level":  "warn",
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-c", path, "--server", "http://flag:3"}))

	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "http://flag:3", cfg.ServerURL, "flag beats json and env")
	assert.Equal(t, "warn", cfg.LogLevel, "json beats env")
	assert.Equal(t, "env-dl", cfg.DownloadDir, "env beats defaults")
	assert.Equal(t, "multitool.db", cfg.DatabasePath, "untouched default")
}

func TestLoad_InvalidResultRejected(t *testing.T) {
	noDotenv(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--server", "not a url"}))

	_, err := Load(fs)
	require.Error(t, err)
}
