package config

const (
	// ConfigFileName is the primary project configuration file.
	ConfigFileName = "ci.ini"
	// DotConfigFileName is the hidden alternative, tried second.
	DotConfigFileName = ".ci.ini"

	// EnvPrefix prefixes the environment variables bound to CLI settings.
	EnvPrefix = "PKGCI"

	// RequirementsFileName is installed with pip -r when present.
	RequirementsFileName = "requirements.txt"
)

// DefaultCandidates returns the config file names tried, in order.
func DefaultCandidates() []string {
	return []string{ConfigFileName, DotConfigFileName}
}
