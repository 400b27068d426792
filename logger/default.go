package logger

import (
	"sync"

	"github.com/streamkit/logchan/channel"
	"github.com/streamkit/logchan/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a console channel and the
	// synchronous writer; call SetWriter(NewAsyncWriter(...)) during
	// startup to switch to background delivery.
	l := New()
	l.Add(channel.NewConsoleChannel(channel.ConsoleConfig{
		Level: core.InfoSeverity,
	}))
	defaultLogger = l
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Capture starts a capturer on the default logger at the given severity
func Capture(level core.Severity) *Capturer {
	return NewCapturer(Default(), level, 1)
}

// Trace logs the values at TraceSeverity using the default logger
func Trace(vals ...interface{}) { Default().emit(core.TraceSeverity, 2, vals) }

// Debug logs the values at DebugSeverity using the default logger
func Debug(vals ...interface{}) { Default().emit(core.DebugSeverity, 2, vals) }

// Info logs the values at InfoSeverity using the default logger
func Info(vals ...interface{}) { Default().emit(core.InfoSeverity, 2, vals) }

// Warn logs the values at WarnSeverity using the default logger
func Warn(vals ...interface{}) { Default().emit(core.WarnSeverity, 2, vals) }

// Error logs the values at ErrorSeverity using the default logger
func Error(vals ...interface{}) { Default().emit(core.ErrorSeverity, 2, vals) }

// Tracef logs a formatted message at TraceSeverity using the default logger
func Tracef(format string, args ...interface{}) {
	Default().emitf(core.TraceSeverity, 2, format, args)
}

// Debugf logs a formatted message at DebugSeverity using the default logger
func Debugf(format string, args ...interface{}) {
	Default().emitf(core.DebugSeverity, 2, format, args)
}

// Infof logs a formatted message at InfoSeverity using the default logger
func Infof(format string, args ...interface{}) {
	Default().emitf(core.InfoSeverity, 2, format, args)
}

// Warnf logs a formatted message at WarnSeverity using the default logger
func Warnf(format string, args ...interface{}) {
	Default().emitf(core.WarnSeverity, 2, format, args)
}

// Errorf logs a formatted message at ErrorSeverity using the default logger
func Errorf(format string, args ...interface{}) {
	Default().emitf(core.ErrorSeverity, 2, format, args)
}
