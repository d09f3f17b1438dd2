package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerWithoutFileIsSilent(t *testing.T) {
	logger, err := newLogger(defaultConfig())
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNewLoggerWritesToFile(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "wirebench.log")

	logger, err := newLogger(cfg)
	require.NoError(t, err)
	logger.Debug("endpoint selected", zap.String("id", "a"))
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"endpoint selected"`)
	assert.Contains(t, string(data), `"id":"a"`)
}
