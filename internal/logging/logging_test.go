package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(dir string) Config
		wantErr bool
		check   func(t *testing.T, path string)
	}{
		{
			name: "no filename discards",
			cfg:  func(string) Config { return Default() },
		},
		{
			name: "console file",
			cfg: func(dir string) Config {
				c := Default()
				c.Filename = filepath.Join(dir, "table.log")
				return c
			},
			check: func(t *testing.T, path string) {
				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Contains(t, string(data), "INFO")
				assert.Contains(t, string(data), "sorted")
				assert.NotContains(t, string(data), "hidden")
			},
		},
		{
			name: "json file at debug",
			cfg: func(dir string) Config {
				c := Default()
				c.Level = "debug"
				c.Format = "json"
				c.Filename = filepath.Join(dir, "table.log")
				return c
			},
			check: func(t *testing.T, path string) {
				data, err := os.ReadFile(path)
				require.NoError(t, err)
				lines := strings.Split(strings.TrimSpace(string(data)), "\n")
				require.Len(t, lines, 2)
				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
				assert.Equal(t, "sorted", entry["msg"])
				assert.Equal(t, "name", entry["column"])
			},
		},
		{
			name:    "bad level",
			cfg:     func(string) Config { c := Default(); c.Level = "loud"; return c },
			wantErr: true,
		},
		{
			name:    "bad format",
			cfg:     func(string) Config { c := Default(); c.Format = "xml"; return c },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg(t.TempDir())
			assert.Equal(t, tt.wantErr, cfg.Validate() != nil)

			logger, err := New(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger.Info("sorted", zap.String("column", "name"))
			logger.Debug("hidden")
			require.NoError(t, logger.Sync())

			if tt.check == nil {
				assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
				return
			}
			tt.check(t, cfg.Filename)
		})
	}
}
