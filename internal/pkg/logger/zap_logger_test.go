package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_WritesJSONLinesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewZapLogger(path, true)

	l.Info("extractor", "file extracted", map[string]interface{}{"file": "a.pdf"})
	l.Warn("extractor", "file failed", nil)
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"message":"file extracted"`)
	assert.Contains(t, out, `"module":"extractor"`)
	assert.Contains(t, out, `"file":"a.pdf"`)
	assert.Contains(t, out, `"level":"WARN"`)
}

func TestNopLogger_AcceptsNilDetails(t *testing.T) {
	var l ILogger = NewNopLogger()

	assert.NotPanics(t, func() {
		l.Debug("m", "debug", nil)
		l.Info("m", "info", nil)
		l.Warn("m", "warn", nil)
		l.Error("m", "error", map[string]interface{}{"error": "boom"})
	})
}
