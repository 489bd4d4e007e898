package logging

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

var (
	once   sync.Once
	logger *slog.Logger
)

// DebugEnabled returns true if debug mode is enabled via the TC_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TC_DEBUG") != ""
}

// Logger returns the shared application logger. Debug-level records are
// only emitted when TC_DEBUG is set.
func Logger() *slog.Logger {
	once.Do(func() {
		level := slog.LevelInfo
		if DebugEnabled() {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
	})
	return logger
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		Logger().Debug(fmt.Sprintf(format, args...))
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		Logger().Debug(fmt.Sprint(args...))
	}
}
