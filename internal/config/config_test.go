package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG_FILE", "GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_MODEL", "HTTP_PORT", "LOG_LEVEL",
	"LOG_MODE", "STATIC_DIR", "MODEL_TIMEOUT", "MODEL_MAX_RETRIES", "MODEL_RETRY_BACKOFF",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.GeminiConfigured())
	require.Equal(t, DefaultModel, cfg.GeminiModel)
	require.Equal(t, "8080", cfg.HTTPPort)
	require.Equal(t, 60*time.Second, cfg.ModelTimeout)
	require.Equal(t, 1, cfg.ModelMaxRetries)
	require.Equal(t, 500*time.Millisecond, cfg.ModelRetryBackoff)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MODEL_TIMEOUT", "5s")
	t.Setenv("MODEL_MAX_RETRIES", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.GeminiConfigured())
	require.Equal(t, "secret", cfg.GeminiAPIKey)
	require.Equal(t, "9090", cfg.HTTPPort)
	require.Equal(t, 5*time.Second, cfg.ModelTimeout)
	require.Equal(t, 0, cfg.ModelMaxRetries)
}

func TestLoad_GoogleKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "google-secret", cfg.GeminiAPIKey)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("geminiModel: gemini-2.5-pro\nhttpPort: \"7000\"\nmodelTimeout: 90s\nstaticDir: /srv/www\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	require.Equal(t, "7001", cfg.HTTPPort)
	require.Equal(t, 90*time.Second, cfg.ModelTimeout)
	require.Equal(t, "/srv/www", cfg.StaticDir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad timeout", key: "MODEL_TIMEOUT", val: "soon"},
		{name: "bad retries", key: "MODEL_MAX_RETRIES", val: "twice"},
		{name: "negative retries", key: "MODEL_MAX_RETRIES", val: "-1"},
		{name: "missing file", key: "CONFIG_FILE", val: "/does/not/exist.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
