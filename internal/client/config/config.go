package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/pflag"
)

// Config holds runtime settings for the multitool CLI.
type Config struct {
	ServerURL      string
	DatabasePath   string
	Ephemeral      bool
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration
	DownloadDir    string
}

// LoadDefaults populates c with sensible defaults. RequestTimeout stays zero:
// the client relies on the transport's own timeouts unless told otherwise.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.DatabasePath = "multitool.db"
	c.Ephemeral = false
	c.LogLevel = "info"
	c.LogFormat = "console"
	c.RequestTimeout = 0
	c.DownloadDir = "downloads"
}

// Validate reports obviously broken settings before anything dials out.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server url %q", c.ServerURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}
	if !c.Ephemeral && c.DatabasePath == "" {
		return fmt.Errorf("database path is required unless ephemeral")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	return nil
}

// Load builds a Config by applying defaults, environment, the JSON file and
// finally the flags in fs that were explicitly set. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if path := jsonConfigPath(fs); path != "" {
		if err := parseJSON(cfg, path); err != nil {
			return nil, err
		}
	}

	if fs != nil {
		if err := applyFlags(cfg, fs); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
