// Package logger configures the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global logger. It is nil until Init succeeds; callers on
// optional paths should nil-check before logging.
var Log *zap.Logger

// Init builds the global logger. An empty logFile selects the development
// console encoder; with a file set, JSON output goes to both the file and
// stdout. Unknown level strings fall back to info.
func Init(level string, logFile string) error {
	var cfg zap.Config

	if logFile != "" {
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{logFile, "stdout"}
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(parsed)

	built, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = built
	return nil
}

// Sync flushes any buffered log entries. Safe to call before Init.
func Sync() error {
	if Log == nil {
		return nil
	}
	return Log.Sync()
}
