package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factsviewer.log")

	logger, err := New(path, false)
	require.NoError(t, err)
	logger.Info("facts fetched", zap.Int("count", 3))
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"facts fetched"`)
	assert.Contains(t, string(data), `"count":3`)
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factsviewer.log")

	logger, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("visible at debug level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible at debug level")
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("goes nowhere")
}

func TestNew_UnwritablePath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing-dir", "x.log"), false)
	assert.Error(t, err)
}
