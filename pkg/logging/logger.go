// Package logging holds the engine's shared slog logger. Algebra
// operators log their "RA>" trace lines at debug level and reported
// (non-fatal) failures, like incompatible schemas or unknown
// attributes, at warn level.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// LogLevel represents logging verbosity.
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// Config holds logger configuration.
type Config struct {
	Level  LogLevel
	Output io.Writer // nil for stdout
	Format string    // "json" or "text"
}

// Init replaces the shared logger. The zero Config logs text at info
// level to stdout. Libraries embedding the engine may instead install
// their own logger with Set.
func Init(config Config) {
	var level slog.Level
	switch config.Level {
	case LevelDebug:
		level = slog.LevelDebug
	case LevelWarn:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	writer := config.Output
	if writer == nil {
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	Set(slog.New(handler))
}

// Set installs a caller-provided logger.
func Set(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Get returns the shared logger. The default discards output so the
// engine is silent unless the host configures logging.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
