package config

import (
	"github.com/spf13/pflag"
)

const (
	flagConfig    = "config"
	flagServer    = "server"
	flagDB        = "db"
	flagEphemeral = "ephemeral"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagTimeout   = "timeout"
	flagDownloads = "download-dir"
)

// BindFlags registers the configuration flags on fs. Defaults shown in help
// output are the built-in ones; only flags the user sets override other
// sources (see Load).
func BindFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "path to JSON config file")
	fs.StringP(flagServer, "a", d.ServerURL, "backend base URL")
	fs.String(flagDB, d.DatabasePath, "path of the local SQLite database")
	fs.Bool(flagEphemeral, d.Ephemeral, "keep tokens in memory only")
	fs.String(flagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(flagLogFormat, d.LogFormat, "log format (console, json)")
	fs.Duration(flagTimeout, d.RequestTimeout, "per-request timeout, 0 disables")
	fs.String(flagDownloads, d.DownloadDir, "directory for downloaded files")
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err != nil || fs.Lookup(name) == nil || !fs.Changed(name) {
			return
		}
		err = apply()
	}

	set(flagServer, func() (e error) { cfg.ServerURL, e = fs.GetString(flagServer); return })
	set(flagDB, func() (e error) { cfg.DatabasePath, e = fs.GetString(flagDB); return })
	set(flagEphemeral, func() (e error) { cfg.Ephemeral, e = fs.GetBool(flagEphemeral); return })
	set(flagLogLevel, func() (e error) { cfg.LogLevel, e = fs.GetString(flagLogLevel); return })
	set(flagLogFormat, func() (e error) { cfg.LogFormat, e = fs.GetString(flagLogFormat); return })
	set(flagTimeout, func() (e error) { cfg.RequestTimeout, e = fs.GetDuration(flagTimeout); return })
	set(flagDownloads, func() (e error) { cfg.DownloadDir, e = fs.GetString(flagDownloads); return })

	return err
}
