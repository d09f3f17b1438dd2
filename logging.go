package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes JSON logs to cfg.LogFile. The terminal belongs to the
// editor, so without a log file nothing is logged.
func newLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", cfg.LogFile, err)
	}
	return logger, nil
}
