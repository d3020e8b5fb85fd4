package logger

import (
	"sync/atomic"
)

// defaultLogger is the process-wide Logger stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(New())
}

// Default returns the process-wide logger.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault replaces the process-wide logger. Nil is ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// Trace logs at TraceLevel on the default logger.
func Trace(msg interface{}, keyvals ...interface{}) {
	Default().Trace(msg, keyvals...)
}

// Debug logs at DebugLevel on the default logger.
func Debug(msg interface{}, keyvals ...interface{}) {
	Default().Debug(msg, keyvals...)
}

// Info logs at InfoLevel on the default logger.
func Info(msg interface{}, keyvals ...interface{}) {
	Default().Info(msg, keyvals...)
}

// Warn logs at WarnLevel on the default logger.
func Warn(msg interface{}, keyvals ...interface{}) {
	Default().Warn(msg, keyvals...)
}

// Error logs at ErrorLevel on the default logger.
func Error(msg interface{}, keyvals ...interface{}) {
	Default().Error(msg, keyvals...)
}
