package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:9090", "--db", "x.db", "--ephemeral", "--log-level", "debug",
				"--log-format", "json", "--timeout", "5s", "--download-dir", "out"},
			want: Config{ServerURL: "http://127.0.0.1:9090", DatabasePath: "x.db", Ephemeral: true,
				LogLevel: "debug", LogFormat: "json", RequestTimeout: 5 * time.Second, DownloadDir: "out"},
		},
		{
			name: "unset flags leave values alone",
			args: []string{"--timeout", "1m"},
			want: Config{ServerURL: "keep", RequestTimeout: time.Minute},
		},
		{
			name:    "bad duration",
			args:    []string{"--timeout", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			BindFlags(fs)

			err := fs.Parse(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			cfg := &Config{ServerURL: "keep"}
			require.NoError(t, applyFlags(cfg, fs))
			assert.Equal(t, tt.want, *cfg)
		})
	}
}
