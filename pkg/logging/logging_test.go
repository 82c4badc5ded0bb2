package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantLevel zerolog.Level
	}{
		{"default warn level", false, zerolog.WarnLevel},
		{"debug level", true, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLogger(Options{Debug: tt.debug, Out: &buf})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetupLogger_DebugWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(Options{Debug: true, Out: &buf})

	logger := GetLogger("engine")
	logger.Debug().Str("pattern", "*.conf").Msg("resolving")

	assert.Contains(t, buf.String(), "resolving")
	assert.Contains(t, buf.String(), "*.conf")
	assert.NotContains(t, buf.String(), "\x1b[", "non-terminal output must not be colored")
}

func TestSetupLogger_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(Options{Out: &buf})

	logger := GetLogger("engine")
	logger.Debug().Msg("hidden")
	logger.Info().Msg("hidden too")

	assert.Empty(t, buf.String())
}

func TestSetupLogger_File(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "envfill.log")

	var buf bytes.Buffer
	SetupLogger(Options{Debug: true, Out: &buf, File: logPath})
	log.Debug().Msg("to both")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestDefaultLogFile(t *testing.T) {
	t.Cleanup(xdg.Reload)
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()

	got, err := DefaultLogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(stateHome, "envfill", "envfill.log"), got)
	assert.DirExists(t, filepath.Join(stateHome, "envfill"))
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "validate")
	time.Sleep(time.Millisecond)
	done()

	assert.Contains(t, buf.String(), "Operation started")
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "duration")
}
