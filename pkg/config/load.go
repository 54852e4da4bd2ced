package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pkgci/pkgci/pkg/schema"
)

// Setting keys. Nested keys map to PKGCI_LOGS_LEVEL and friends.
const (
	KeyLogsLevel         = "logs.level"
	KeyLogsFile          = "logs.file"
	KeyConfig            = "config"
	KeyPlatform          = "platform"
	KeyPython            = "python"
	KeySentryDSN         = "sentry.dsn"
	KeySentryEnvironment = "sentry.environment"
	KeySentryDebug       = "sentry.debug"
)

// flagKeys maps CLI flag names to setting keys.
var flagKeys = map[string]string{
	"logs-level": KeyLogsLevel,
	"logs-file":  KeyLogsFile,
	"config":     KeyConfig,
	"platform":   KeyPlatform,
	"python":     KeyPython,
}

// LoadSettings resolves the CLI settings from (lowest to highest priority)
// defaults, PKGCI_* environment variables and the flags that were set.
// flags may be nil.
func LoadSettings(flags *pflag.FlagSet) (*schema.Settings, error) {
	v := viper.New()
	setDefaultSettings(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{KeyConfig, KeyPlatform, KeyPython, KeySentryDSN, KeySentryEnvironment, KeySentryDebug} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	var settings schema.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// setDefaultSettings sets default settings for the viper instance.
func setDefaultSettings(v *viper.Viper) {
	v.SetDefault(KeyLogsLevel, "Info")
	v.SetDefault(KeyLogsFile, "/dev/stderr")
}

// Candidates returns the config files to try: the explicit override when set, otherwise the defaults.
func Candidates(settings *schema.Settings) []string {
	if settings != nil && settings.ConfigPath != "" {
		return []string{settings.ConfigPath}
	}
	return DefaultCandidates()
}
