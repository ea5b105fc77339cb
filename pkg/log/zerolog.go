// Package log: zerolog-backed implementation of Logger and LoggerProvider.
//
// This file owns the default provider plumbing. Library code always goes
// through GetLogger or GetLoggerWithName so that tests can swap in a
// TestLoggerProvider with SetLoggerProvider.

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	imatmlErrors "github.com/ICAI-IMAT-ML/p2-4-202307302/pkg/errors"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

// Debug implements Logger.Debug.
func (l *zerologLogger) Debug(msg string, fields ...any) {
	applyFields(l.zl.Debug(), fields).Msg(msg)
}

// Info implements Logger.Info.
func (l *zerologLogger) Info(msg string, fields ...any) {
	applyFields(l.zl.Info(), fields).Msg(msg)
}

// Warn implements Logger.Warn.
func (l *zerologLogger) Warn(msg string, fields ...any) {
	applyFields(l.zl.Warn(), fields).Msg(msg)
}

// Error implements Logger.Error.
func (l *zerologLogger) Error(msg string, fields ...any) {
	applyFields(l.zl.Error(), fields).Msg(msg)
}

// With implements Logger.With.
func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key := fieldKey(fields[i])
		switch v := fields[i+1].(type) {
		case error:
			ctx = ctx.AnErr(key, v)
		case zerolog.LogObjectMarshaler:
			ctx = ctx.Object(key, v)
		case string:
			ctx = ctx.Str(key, v)
		case int:
			ctx = ctx.Int(key, v)
		case int64:
			ctx = ctx.Int64(key, v)
		case float64:
			ctx = ctx.Float64(key, v)
		case bool:
			ctx = ctx.Bool(key, v)
		default:
			ctx = ctx.Interface(key, v)
		}
	}
	return &zerologLogger{zl: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	current := l.zl.GetLevel()
	return current != zerolog.Disabled && toZerologLevel(level) >= current
}

// applyFields attaches alternating key-value pairs to a zerolog event.
// An error value is attached through zerolog's error dispatch, which renders
// types implementing zerolog.LogObjectMarshaler as structured objects, and a
// stack trace extracted from the error is added under StacktraceKey.
func applyFields(e *zerolog.Event, fields []any) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fieldKey(fields[i])
		switch v := fields[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
			if st := extractStacktrace(v); st != "" {
				e = e.Str(StacktraceKey, st)
			}
		case zerolog.LogObjectMarshaler:
			e = e.Object(key, v)
		case string:
			e = e.Str(key, v)
		case int:
			e = e.Int(key, v)
		case int64:
			e = e.Int64(key, v)
		case float64:
			e = e.Float64(key, v)
		case bool:
			e = e.Bool(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	return e
}

func fieldKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", k)
}

// extractStacktrace pulls the stack trace out of a cockroachdb-style error.
func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// toZerologLevel maps a slog-compatible Level onto a zerolog level.
func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ZerologProvider is the default LoggerProvider. It hands out loggers that
// write JSON records to a single destination.
type ZerologProvider struct {
	mu   sync.RWMutex
	base zerolog.Logger
}

// NewZerologProvider creates a provider writing JSON log lines to w.
// The initial level is Info, so per-epoch training diagnostics stay silent
// until SetLevel(LevelDebug) is called.
func NewZerologProvider(w io.Writer) *ZerologProvider {
	base := zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	return &ZerologProvider{base: base}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{zl: p.base}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{zl: p.base.With().Str(ComponentKey, name).Logger()}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.base = p.base.Level(toZerologLevel(level))
}

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = NewZerologProvider(os.Stderr)
)

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a component-tagged logger from the current provider.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}

// SetLoggerProvider swaps the provider used by GetLogger and
// GetLoggerWithName. Tests use this to capture library log output.
func SetLoggerProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultProvider = p
}

// SetLevel adjusts the minimum level on the current provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	defaultProvider.SetLevel(level)
}

// RouteWarnings redirects library warnings raised through errors.Warn into
// the structured logging pipeline. Warnings are emitted at Warn level by the
// provider current at emission time, so installing a test provider afterwards
// still captures them. Call errors.SetZerologWarnFunc(nil) to restore the
// plain handler.
func RouteWarnings() {
	imatmlErrors.SetZerologWarnFunc(func(warning error) {
		GetLoggerWithName("warnings").Warn(warning.Error(), "warning", warning)
	})
}
