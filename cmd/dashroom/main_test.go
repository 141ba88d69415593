package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failScreen() (tcell.Screen, error) {
	return nil, errors.New("no tty")
}

// TestRunFlushesLogOnEarlyExit checks setup failures still reach the log file
func TestRunFlushesLogOnEarlyExit(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		want       string
	}{
		{"missing config", "missing.toml", "load config"},
		{"screen failure", "", "create screen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			logPath := filepath.Join(dir, "dashroom.log")
			opts := options{debug: true, logPath: logPath, seed: 1, mute: true}
			if tt.configPath != "" {
				opts.configPath = filepath.Join(dir, tt.configPath)
			}

			assert.Equal(t, 1, run(opts, failScreen))

			data, err := os.ReadFile(logPath)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
		})
	}
}
