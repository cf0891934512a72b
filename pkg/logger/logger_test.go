package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skhanzad/libralite/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_FileSink(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "app.log")

	log := logger.NewLogger(logger.Log{LogLevel: zapcore.InfoLevel, Sink: path}, "test")
	log.Debug("hidden")
	log.Info("visible")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"visible"`)
	require.Contains(t, string(data), `"logger":"test"`)
	require.NotContains(t, string(data), "hidden")
}
