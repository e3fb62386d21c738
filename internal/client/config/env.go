package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "MULTITOOL_"

// dotenvFiles are loaded, when present, before the environment is read.
// Variables already set in the process environment are not overridden.
var dotenvFiles = []string{".env"}

func loadDotenv() error {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// applyEnv overlays cfg with MULTITOOL_* variables.
func applyEnv(cfg *Config) error {
	if err := loadDotenv(); err != nil {
		return err
	}

	if v, ok := os.LookupEnv(envPrefix + "SERVER_URL"); ok {
		cfg.ServerURL = v
	}
	if v, ok := os.LookupEnv(envPrefix + "DB_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(envPrefix + "EPHEMERAL"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sEPHEMERAL: %w", envPrefix, err)
		}
		cfg.Ephemeral = b
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv(envPrefix + "REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sREQUEST_TIMEOUT: %w", envPrefix, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(envPrefix + "DOWNLOAD_DIR"); ok {
		cfg.DownloadDir = v
	}
	return nil
}
