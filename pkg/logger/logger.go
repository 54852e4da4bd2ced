// Package logger wraps charmbracelet/log with the pkgci level names and a trace level.
package logger

import (
	"io"
	"os"
	"strings"

	charm "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	errUtils "github.com/pkgci/pkgci/errors"
)

const (
	// TraceLevel sits below charm's DebugLevel.
	TraceLevel = charm.DebugLevel - 1
	// DebugLevel is charm's debug level.
	DebugLevel = charm.DebugLevel
	// InfoLevel is charm's info level.
	InfoLevel = charm.InfoLevel
	// WarnLevel is charm's warn level.
	WarnLevel = charm.WarnLevel
	// ErrorLevel is charm's error level.
	ErrorLevel = charm.ErrorLevel
	// OffLevel suppresses everything.
	OffLevel = charm.FatalLevel + 1
)

// LogLevel is the user facing name of a level, as accepted by --logs-level.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// Logger is a charm logger that also knows about trace level.
type Logger struct {
	*charm.Logger
	// closer is the log file opened for --logs-file, if any.
	closer io.Closer
}

// NewLogger creates a logger at the given level writing to file.
// file may be "", "/dev/stderr", "/dev/stdout", "/dev/null" or a path, which is appended to.
func NewLogger(level charm.Level, file string) (*Logger, error) {
	w, err := openOutput(file)
	if err != nil {
		return nil, err
	}
	l := newCharmLogger(w)
	l.SetLevel(level)

	logger := &Logger{Logger: l}
	if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		logger.closer = f
	}
	return logger, nil
}

// NewFromLevelName parses a level name and creates the logger.
func NewFromLevelName(levelName, file string) (*Logger, error) {
	level, err := ParseLogLevel(levelName)
	if err != nil {
		return nil, err
	}
	return NewLogger(level, file)
}

func newCharmLogger(w io.Writer) *charm.Logger {
	l := charm.NewWithOptions(w, charm.Options{ReportTimestamp: false})
	styles := charm.DefaultStyles()
	styles.Levels[TraceLevel] = styles.Levels[charm.DebugLevel].SetString("TRCE")
	l.SetStyles(styles)
	return l
}

func openOutput(file string) (io.Writer, error) {
	switch file {
	case "", "/dev/stderr":
		return os.Stderr, nil
	case "/dev/stdout":
		return os.Stdout, nil
	case "/dev/null":
		return io.Discard, nil
	}
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %q", file)
	}
	return f, nil
}

// ParseLogLevel converts a level name into a charm level. Names are case-sensitive;
// an empty name means Info.
func ParseLogLevel(logLevel string) (charm.Level, error) {
	switch LogLevel(logLevel) {
	case "", LogLevelInfo:
		return InfoLevel, nil
	case LogLevelTrace:
		return TraceLevel, nil
	case LogLevelDebug:
		return DebugLevel, nil
	case LogLevelWarning:
		return WarnLevel, nil
	case LogLevelOff:
		return OffLevel, nil
	default:
		return InfoLevel, errUtils.Build(errUtils.ErrInvalidLogLevel).
			WithContext("level", logLevel).
			WithHint("Supported log levels are Trace, Debug, Info, Warning, Off").
			Err()
	}
}

// Trace logs a message at trace level.
func (l *Logger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Log(TraceLevel, msg, keyvals...)
}

// IsVerbose reports whether the level is Debug or Trace.
func (l *Logger) IsVerbose() bool {
	return l.GetLevel() <= DebugLevel
}

// Close closes the log file. Later messages are discarded. Loggers writing to
// a standard stream have nothing to close.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	l.SetOutput(io.Discard)
	err := l.closer.Close()
	l.closer = nil
	return err
}

// GetLevelString returns the lower-case level name.
func (l *Logger) GetLevelString() string {
	switch level := l.GetLevel(); level {
	case TraceLevel:
		return "trace"
	case OffLevel:
		return "off"
	default:
		return strings.ToLower(level.String())
	}
}
