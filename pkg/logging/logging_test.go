package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", "json", zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "method", "Introduce")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"method":"Introduce"`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", "console", nil)
	assert.Error(t, err)
}

func TestWithAddsContext(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", "json", zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.With("component", "proxy").Debug("hello")
	assert.Contains(t, buf.String(), `"component":"proxy"`)
}

func TestInitLoggerReplacesGlobal(t *testing.T) {
	previous := GetLogger()
	t.Cleanup(func() {
		mu.Lock()
		globalLogger = previous
		mu.Unlock()
	})

	var buf bytes.Buffer
	require.NoError(t, InitLogger("info", "console", zapcore.AddSync(&buf)))
	GetLogger().Info("from global")
	assert.Contains(t, buf.String(), "from global")
}
