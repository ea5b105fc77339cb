// Package log provides a structured logging facade for the library's machine
// learning operations.
//
// The interface is slog-compatible so implementations can be swapped without
// touching call sites. The default backend is zerolog (see zerolog.go), and a
// buffer-backed TestLogger is provided for asserting on log output in tests.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("linear.regression")
//	logger.Debug("Training progress",
//	    log.EpochKey, epoch,
//	    log.LossKey, mse,
//	)
package log

import (
	"context"
	"strings"

	imatmlErrors "github.com/ICAI-IMAT-ML/p2-4-202307302/pkg/errors"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key-value pairs. When a field value is an error the
// backend attaches it specially: typed errors that implement
// zerolog.LogObjectMarshaler are emitted as structured objects, and errors
// carrying a stack trace contribute a stacktrace attribute.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Used for detailed diagnostics such as per-epoch training progress.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a new Logger that includes the given fields in every
	// subsequent log record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Callers can use it to skip building expensive diagnostic fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // detailed diagnostic information
	LevelInfo  Level = 0  // general operational information
	LevelWarn  Level = 4  // warning conditions
	LevelError Level = 8  // error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") into a
// Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, imatmlErrors.NewValueError("log.ParseLevel", "unknown log level: '"+s+"'")
	}
}

// LoggerProvider creates and configures loggers. It exists for dependency
// injection: tests install a TestLoggerProvider to capture output.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for loggers from this provider.
	SetLevel(level Level)
}
