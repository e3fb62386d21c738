// Package config loads runtime configuration for the multitool CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file.
//  3. Optional JSON file selected with --config / -c or MULTITOOL_CONFIG.
//  4. Command-line flags that were explicitly set.
//
// Environment
//
//	MULTITOOL_SERVER_URL       backend base URL
//	MULTITOOL_DB_PATH          path of the local SQLite file
//	MULTITOOL_EPHEMERAL        keep tokens in memory only ("true"/"false")
//	MULTITOOL_LOG_LEVEL        debug|info|warn|error
//	MULTITOOL_LOG_FORMAT       console|json
//	MULTITOOL_REQUEST_TIMEOUT  per-request timeout, e.g. "30s"; 0 disables
//	MULTITOOL_DOWNLOAD_DIR     where downloads are written
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "db_path": "multitool.db",
//	  "ephemeral": false,
//	  "log_level": "info",
//	  "log_format": "console",
//	  "request_timeout": "0s",
//	  "download_dir": "downloads"
//	}
package config
