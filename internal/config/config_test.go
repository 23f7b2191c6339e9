package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIKey, EnvBaseURL, EnvLimit, EnvPatternsDir, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marquee.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, cfg.Limit)
	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.PatternsDir)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "api_key: from-file\nlimit: 3\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "api_key: from-file\nbase_url: http://file.example\n")
	t.Setenv(EnvAPIKey, "from-env")
	t.Setenv(EnvLimit, "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "http://file.example", cfg.BaseURL, "untouched file values survive")
	assert.Equal(t, 7, cfg.Limit)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "api_key: x\nretries: 5\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retries")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsBadLimitEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLimit, "ten")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvLimit)
}

func TestLoadRejectsNonPositiveLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLimit, "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")
}
