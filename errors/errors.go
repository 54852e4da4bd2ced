package errors

import (
	"github.com/cockroachdb/errors"
)

// Configuration errors.
var (
	ErrConfigNotFound       = errors.New("configuration file not found")
	ErrConfigParse          = errors.New("failed to parse configuration file")
	ErrMissingPackageName   = errors.New("package name is not configured")
	ErrInvalidLogLevel      = errors.New("invalid log level")
	ErrInterpreterNotMapped = errors.New("no python interpreter is mapped for this platform")
)

// Platform detection errors.
var (
	ErrUnsupportedPlatform = errors.New("this CI platform is not currently supported")
	ErrUnsupportedOS       = errors.New("unsupported operating system")
)

// Pipeline errors.
var (
	ErrStageFailed             = errors.New("pipeline stage failed")
	ErrCoverageWithoutRunner   = errors.New("coverage cannot be enabled without nose")
	ErrCoverageProviderMissing = errors.New("coverage is enabled but no coverage provider is configured")
	ErrArtifactNotFound        = errors.New("built package file not found")
	ErrUnsafeDeletePath        = errors.New("delete path is outside the working directory")
	ErrCommandStart            = errors.New("failed to start command")
)

// Generator errors.
var (
	ErrInvalidDocument   = errors.New("generated document is not valid YAML")
	ErrTooManyAttempts   = errors.New("too many invalid answers")
	ErrUserAborted       = errors.New("aborted by user")
	ErrOverwriteDeclined = errors.New("overwrite declined")
	ErrInvalidVersion    = errors.New("invalid python version")
	ErrNoVersions        = errors.New("no python versions given")
)
