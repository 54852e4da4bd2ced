package ci

import (
	errUtils "github.com/pkgci/pkgci/errors"
	"github.com/pkgci/pkgci/pkg/schema"
)

// RunContext describes one CI invocation. It is built once by NewRunContext
// and passed by value.
type RunContext struct {
	Provider Provider
	OS       OS
	Python   string
	Dist     schema.DistKind
	Package  string
}

// Environment is what NewRunContext inspects. Empty overrides are ignored.
type Environment struct {
	Getenv           func(string) string
	GOOS             string
	PlatformOverride string
	PythonOverride   string
}

// NewRunContext resolves provider, OS, interpreter and distribution kind,
// and reads the package name from cfg.
func NewRunContext(env Environment, cfg *schema.Configuration) (RunContext, error) {
	var (
		rc  RunContext
		err error
	)

	if env.PlatformOverride != "" {
		rc.Provider, err = ParseProvider(env.PlatformOverride)
	} else {
		rc.Provider, err = DetectProvider(env.Getenv)
	}
	if err != nil {
		return RunContext{}, err
	}

	if rc.OS, err = DetectOS(env.GOOS); err != nil {
		return RunContext{}, err
	}

	rc.Python = env.PythonOverride
	if rc.Python == "" {
		if rc.Python, err = PythonCommand(rc.Provider, rc.OS); err != nil {
			return RunContext{}, err
		}
	}

	rc.Dist = DistKindFromEnv(env.Getenv)

	name, ok := cfg.Lookup(schema.SectionPackage, schema.OptionName)
	if !ok || name == "" {
		return RunContext{}, errUtils.Build(errUtils.ErrMissingPackageName).
			WithHint("Set name under [package] in ci.ini").
			Err()
	}
	rc.Package = name

	return rc, nil
}

// DistKindFromEnv selects sdist when SDIST is exactly "true", otherwise bdist_wheel.
func DistKindFromEnv(getenv func(string) string) schema.DistKind {
	if getenv("SDIST") == "true" {
		return schema.DistSource
	}
	return schema.DistBinary
}
