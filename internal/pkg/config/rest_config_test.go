//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
logger:
  log_level: debug
  log_type: console
generator:
  max_exponent_attempts: 500
  max_generation_retries: 2
  retry_backoff: 5ms
  seed: 42
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, 500, cfg.Generator.MaxExponentAttempts)
	assert.Equal(t, uint64(2), cfg.Generator.MaxGenerationRetries)
	assert.Equal(t, 5*time.Millisecond, cfg.Generator.RetryBackoff)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, DefaultMaxExponentAttempts, cfg.Generator.MaxExponentAttempts)
	assert.Equal(t, DefaultRetryBackoff, cfg.Generator.RetryBackoff)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	t.Setenv("TRSA_PORT", "7070")
	t.Setenv("TRSA_GENERATOR_SEED", "99")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, int64(99), cfg.Generator.Seed)
}

func TestInitializeRestConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid logger section", func(t *testing.T) {
		path := writeConfigFile(t, `
logger:
  log_level: loud
  log_type: console
`)
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("non-numeric port", func(t *testing.T) {
		path := writeConfigFile(t, `port: "http"`)
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})
}
