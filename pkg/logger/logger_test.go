package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	charm "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/pkgci/pkgci/errors"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    charm.Level
		expectError bool
	}{
		{"Empty string returns Info", "", InfoLevel, false},
		{"Valid Trace level", "Trace", TraceLevel, false},
		{"Valid Debug level", "Debug", DebugLevel, false},
		{"Valid Info level", "Info", InfoLevel, false},
		{"Valid Warning level", "Warning", WarnLevel, false},
		{"Valid Off level", "Off", OffLevel, false},
		{"Invalid lowercase level", "trace", 0, true},
		{"Invalid mixed case level", "TrAcE", 0, true},
		{"Invalid level", "InvalidLevel", 0, true},
		{"Invalid empty spaces", "  ", 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			level, err := ParseLogLevel(test.input)
			if test.expectError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, errUtils.ErrInvalidLogLevel))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expected, level)
		})
	}
}

func TestLogger_LogMethods(t *testing.T) {
	tests := []struct {
		name         string
		loggerLevel  charm.Level
		message      string
		expectOutput bool
		logFunc      func(*Logger, string)
	}{
		{"Trace logs when level is Trace", TraceLevel, "trace message", true, func(l *Logger, m string) { l.Trace(m) }},
		{"Trace doesn't log when level is Debug", DebugLevel, "trace message", false, func(l *Logger, m string) { l.Trace(m) }},
		{"Debug logs when level is Trace", TraceLevel, "debug message", true, func(l *Logger, m string) { l.Debug(m) }},
		{"Debug doesn't log when level is Info", InfoLevel, "debug message", false, func(l *Logger, m string) { l.Debug(m) }},
		{"Info logs when level is Info", InfoLevel, "info message", true, func(l *Logger, m string) { l.Info(m) }},
		{"Info doesn't log when level is Warning", WarnLevel, "info message", false, func(l *Logger, m string) { l.Info(m) }},
		{"Warn logs when level is Warning", WarnLevel, "warning message", true, func(l *Logger, m string) { l.Warn(m) }},
		{"Nothing logs when level is Off", OffLevel, "any message", false, func(l *Logger, m string) { l.Error(m) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New()
			l.SetOutput(&buf)
			l.SetLevel(test.loggerLevel)

			test.logFunc(l, test.message)

			if test.expectOutput {
				assert.Contains(t, buf.String(), test.message)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLogger_FileLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "pkgci.log")

	l, err := NewLogger(InfoLevel, logFile)
	require.NoError(t, err)
	l.Info("File logging test", "stage", "build")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "File logging test")
	assert.Contains(t, string(data), "stage=build")
}

func TestNewLogger_BadFile(t *testing.T) {
	_, err := NewLogger(InfoLevel, filepath.Join(t.TempDir(), "missing", "pkgci.log"))
	assert.Error(t, err)
}

func TestNewFromLevelName(t *testing.T) {
	l, err := NewFromLevelName("Debug", "/dev/null")
	require.NoError(t, err)
	assert.Equal(t, DebugLevel, l.GetLevel())

	_, err = NewFromLevelName("Loud", "/dev/null")
	assert.Error(t, err)
}

func TestLogger_GetLevelString(t *testing.T) {
	l := New()

	l.SetLevel(TraceLevel)
	assert.Equal(t, "trace", l.GetLevelString())
	assert.True(t, l.IsVerbose())

	l.SetLevel(DebugLevel)
	assert.Equal(t, "debug", l.GetLevelString())
	assert.True(t, l.IsVerbose())

	l.SetLevel(InfoLevel)
	assert.Equal(t, "info", l.GetLevelString())
	assert.False(t, l.IsVerbose())

	l.SetLevel(OffLevel)
	assert.Equal(t, "off", l.GetLevelString())
	assert.False(t, l.IsVerbose())
}

func TestLogger_CloseLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "pkgci.log")

	l, err := NewLogger(InfoLevel, logFile)
	require.NoError(t, err)
	require.NotNil(t, l.closer)
	l.Info("before close")

	require.NoError(t, l.Close())
	assert.Nil(t, l.closer)
	l.Info("after close")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "before close")
	assert.NotContains(t, string(data), "after close")
}

func TestLogger_CloseStandardStreams(t *testing.T) {
	for _, file := range []string{"", "/dev/stderr", "/dev/stdout", "/dev/null"} {
		l, err := NewLogger(InfoLevel, file)
		require.NoError(t, err)
		assert.Nil(t, l.closer, file)
		assert.NoError(t, l.Close())
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	oldLogger := Default()
	defer SetDefault(oldLogger)

	var buf bytes.Buffer
	testLogger := New()
	testLogger.SetOutput(&buf)
	testLogger.SetLevel(TraceLevel)
	SetDefault(testLogger)

	Trace("package level trace")
	Debug("package level debug")
	Info("package level info")
	Warn("package level warn")
	Error("package level error")

	for _, msg := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Contains(t, buf.String(), "package level "+msg)
	}

	SetDefault(nil)
	assert.Same(t, testLogger, Default())
}
