package logger

import (
	"os"
	"sync/atomic"
)

// defaultLogger is the global default Logger stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(New())
}

// Default returns the global default Logger.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault replaces the global default Logger. nil is ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// New creates a Logger at info level on stderr.
func New() *Logger {
	l := newCharmLogger(os.Stderr)
	l.SetLevel(InfoLevel)
	return &Logger{Logger: l}
}

// Trace logs at trace level on the default logger.
func Trace(msg interface{}, keyvals ...interface{}) {
	Default().Trace(msg, keyvals...)
}

// Debug logs at debug level on the default logger.
func Debug(msg interface{}, keyvals ...interface{}) {
	Default().Debug(msg, keyvals...)
}

// Info logs at info level on the default logger.
func Info(msg interface{}, keyvals ...interface{}) {
	Default().Info(msg, keyvals...)
}

// Warn logs at warn level on the default logger.
func Warn(msg interface{}, keyvals ...interface{}) {
	Default().Warn(msg, keyvals...)
}

// Error logs at error level on the default logger.
func Error(msg interface{}, keyvals ...interface{}) {
	Default().Error(msg, keyvals...)
}
