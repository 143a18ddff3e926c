package appconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, Development, cfg.Env)
	assert.Equal(t, []string{"test"}, cfg.ApiKeys)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("QIBLA_PORT", "8081")
	t.Setenv("QIBLA_ENV", "production")
	t.Setenv("QIBLA_API_KEYS", "alpha, beta,,")
	t.Setenv("QIBLA_SESSION_TTL", "5m")
	t.Setenv("QIBLA_LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.ApiKeys)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qibla.yaml")
	contents := "port: 9090\nenv: test\napi_keys:\n  - one\n  - two\nrate_limit: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, Test, cfg.Env)
	assert.Equal(t, []string{"one", "two"}, cfg.ApiKeys)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFileEnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qibla.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9090\n"), 0o600))
	t.Setenv("QIBLA_PORT", "7070")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("QIBLA_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port must be 1-65535")
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Config{
		Port:            0,
		RateLimit:       0,
		LogFormat:       "xml",
		SessionTTL:      -time.Second,
		ShutdownTimeout: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "port must be 1-65535")
	assert.Contains(t, msg, "at least one api key is required")
	assert.Contains(t, msg, "rate_limit must be positive")
	assert.Contains(t, msg, `log_format must be json or text, got "xml"`)
	assert.Contains(t, msg, "session_ttl must not be negative")
	assert.Contains(t, msg, "shutdown_timeout must be positive")
}

func TestSplitAPIKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitAPIKeys(" a ,b"))
	assert.Equal(t, []string{}, SplitAPIKeys(""))
	assert.Equal(t, []string{}, SplitAPIKeys(" , "))
}

func TestEnvFlagToEnvironment(t *testing.T) {
	tests := []struct {
		input    string
		expected Environment
	}{
		{"development", Development},
		{"test", Test},
		{"PRODUCTION", Production},
		{"prod", Production},
		{"staging", Development},
		{"", Development},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env := EnvFlagToEnvironment(tt.input)
			assert.Equal(t, tt.expected, env)
		})
	}

	assert.Equal(t, "production", Production.String())
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "development", Development.String())
}
