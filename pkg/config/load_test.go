package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("logs-level", "Info", "")
	flags.String("logs-file", "/dev/stderr", "")
	flags.String("config", "", "")
	flags.String("platform", "", "")
	flags.String("python", "", "")
	return flags
}

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, "Info", settings.Logs.Level)
	assert.Equal(t, "/dev/stderr", settings.Logs.File)
	assert.Empty(t, settings.ConfigPath)
	assert.Empty(t, settings.Sentry.DSN)
}

func TestLoadSettings_Env(t *testing.T) {
	t.Setenv("PKGCI_LOGS_LEVEL", "Debug")
	t.Setenv("PKGCI_CONFIG", "other.ini")
	t.Setenv("PKGCI_SENTRY_DSN", "https://key@example.invalid/1")

	settings, err := LoadSettings(newFlags())
	require.NoError(t, err)
	assert.Equal(t, "Debug", settings.Logs.Level)
	assert.Equal(t, "other.ini", settings.ConfigPath)
	assert.Equal(t, "https://key@example.invalid/1", settings.Sentry.DSN)
}

func TestLoadSettings_FlagsWin(t *testing.T) {
	t.Setenv("PKGCI_LOGS_LEVEL", "Debug")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--logs-level", "Trace", "--platform", "travis", "--python", "python3"}))

	settings, err := LoadSettings(flags)
	require.NoError(t, err)
	assert.Equal(t, "Trace", settings.Logs.Level)
	assert.Equal(t, "travis", settings.Platform)
	assert.Equal(t, "python3", settings.Python)
}
