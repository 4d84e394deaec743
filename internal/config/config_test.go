package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeSecrets(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestResolveGoogleAPIKey_SecretsFileWins(t *testing.T) {
	path := writeSecrets(t, "[google]\napi_key = \"from-file\"\n")

	key, err := ResolveGoogleAPIKey(path, envFrom(map[string]string{"GOOGLE_API_KEY": "from-env"}))

	require.NoError(t, err)
	assert.Equal(t, "from-file", key)
}

func TestResolveGoogleAPIKey_FallsBackToEnv(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "no secrets file", path: filepath.Join(t.TempDir(), "missing.toml")},
		{name: "no google table", path: writeSecrets(t, "[other]\nvalue = 1\n")},
		{name: "empty path", path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ResolveGoogleAPIKey(tt.path, envFrom(map[string]string{"GOOGLE_API_KEY": "from-env"}))

			require.NoError(t, err)
			assert.Equal(t, "from-env", key)
		})
	}
}

func TestResolveGoogleAPIKey_Missing(t *testing.T) {
	key, err := ResolveGoogleAPIKey("", envFrom(nil))

	assert.Empty(t, key)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestResolveGoogleAPIKey_BrokenSecretsFile(t *testing.T) {
	path := writeSecrets(t, "[google\napi_key = ")

	key, err := ResolveGoogleAPIKey(path, envFrom(map[string]string{"GOOGLE_API_KEY": "from-env"}))
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)

	_, err = ResolveGoogleAPIKey(path, envFrom(nil))
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "parse secrets file")
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.Keys.GoogleAPIKey = "k"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRETS_PATH", filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv("GOOGLE_API_KEY", "env-key")
	t.Setenv("OCR_LANGUAGES", "eng, deu ,")
	t.Setenv("UPLOAD_MAX_MB", "not-a-number")

	cfg := Load()

	assert.Equal(t, "env-key", cfg.Keys.GoogleAPIKey)
	assert.Equal(t, "models/gemini-1.5-flash-latest", cfg.Ai.GeminiModel)
	assert.Equal(t, []string{"eng", "deu"}, cfg.Upload.OCRLanguages)
	assert.Equal(t, 25, cfg.Upload.MaxBodyMB)
	assert.False(t, cfg.IsProduction())
}
