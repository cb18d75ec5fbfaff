// Package logging owns the process-wide logger. Initialization happens
// exactly once; after that the logger is reachable through L() by the host
// and by the host functions serving loaded plugins, with no further mutable
// global state.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once    sync.Once
	initErr error
)

// Init builds the global logger at the given level and installs it via
// zap.ReplaceGlobals. Only the first call has any effect.
func Init(level string) error {
	once.Do(func() {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			initErr = err
			return
		}

		var cfg zap.Config
		if lvl == zapcore.DebugLevel {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)

		logger, err := cfg.Build()
		if err != nil {
			initErr = err
			return
		}
		zap.ReplaceGlobals(logger)
	})
	return initErr
}

// L returns the process-wide logger.
func L() *zap.Logger {
	return zap.L()
}
