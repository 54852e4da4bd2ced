// Package schema holds the data model shared by the loader, the detector and the pipeline.
package schema

// Section names recognized in the project configuration file.
const (
	SectionPackage  = "package"
	SectionCoverage = "coverage"
)

// Option names.
const (
	OptionName         = "name"
	OptionDependencies = "dependencies"
	OptionTests        = "tests"
	OptionBefore       = "before"
	OptionAfter        = "after"
	OptionDelete       = "delete"
	OptionWorkingDir   = "working_dir"
	OptionEnabled      = "enabled"
	OptionProvider     = "provider"
	OptionPackages     = "packages"
)

// DefaultTestRunner is the test runner used when package.tests is not set.
const DefaultTestRunner = "nose"

// Configuration maps section names to their options.
// It is loaded from exactly one file per run and not modified afterwards.
type Configuration struct {
	// Path is the absolute path of the file the configuration was read from.
	Path     string
	Sections map[string]map[string]string
}

// Lookup returns the raw option value and whether it is present.
func (c *Configuration) Lookup(section, option string) (string, bool) {
	if c == nil {
		return "", false
	}
	opts, ok := c.Sections[section]
	if !ok {
		return "", false
	}
	v, ok := opts[option]
	return v, ok
}

// Get returns the option value or fallback when it is absent.
func (c *Configuration) Get(section, option, fallback string) string {
	if v, ok := c.Lookup(section, option); ok {
		return v
	}
	return fallback
}

// HasSection reports whether the section exists.
func (c *Configuration) HasSection(section string) bool {
	if c == nil {
		return false
	}
	_, ok := c.Sections[section]
	return ok
}

// DistKind selects the setup.py distribution command.
type DistKind string

const (
	DistSource DistKind = "sdist"
	DistBinary DistKind = "bdist_wheel"
)

// Settings are the CLI settings, from flags and PKGCI_* environment variables.
type Settings struct {
	Logs       Logs         `mapstructure:"logs"`
	ConfigPath string       `mapstructure:"config"`
	Platform   string       `mapstructure:"platform"`
	Python     string       `mapstructure:"python"`
	Sentry     SentryConfig `mapstructure:"sentry"`
}

// Logs configures the logger.
type Logs struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// SentryConfig configures optional crash reporting. Empty DSN disables it.
type SentryConfig struct {
	DSN         string            `mapstructure:"dsn"`
	Environment string            `mapstructure:"environment"`
	Release     string            `mapstructure:"release"`
	Debug       bool              `mapstructure:"debug"`
	Tags        map[string]string `mapstructure:"tags"`
}
