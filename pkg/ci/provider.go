// Package ci detects the CI provider and operating system a run executes on.
package ci

import (
	"github.com/cockroachdb/errors"

	errUtils "github.com/pkgci/pkgci/errors"
	"github.com/pkgci/pkgci/pkg/config"
	log "github.com/pkgci/pkgci/pkg/logger"
)

// Provider identifies a supported CI provider.
type Provider string

const (
	TravisCI Provider = "travis"
	AppVeyor Provider = "appveyor"
)

// detectors lists providers in detection priority order.
var detectors = []struct {
	provider Provider
	envVar   string
}{
	{TravisCI, "TRAVIS"},
	{AppVeyor, "APPVEYOR"}, // "true" on Windows images, "True" on Ubuntu images.
}

// Providers returns all supported providers in detection priority order.
func Providers() []Provider {
	out := make([]Provider, 0, len(detectors))
	for _, d := range detectors {
		out = append(out, d.provider)
	}
	return out
}

// ParseProvider validates a provider name such as the --platform override.
func ParseProvider(name string) (Provider, error) {
	for _, d := range detectors {
		if string(d.provider) == name {
			return d.provider, nil
		}
	}
	return "", errUtils.Build(errUtils.ErrUnsupportedPlatform).
		WithContext("platform", name).
		WithHintf("Supported platforms are %s and %s", TravisCI, AppVeyor).
		Err()
}

// DetectProvider returns the first provider whose indicator variable is truthy.
func DetectProvider(getenv func(string) string) (Provider, error) {
	for _, d := range detectors {
		if config.ParseBool(getenv(d.envVar)) {
			log.Debug("CI provider detected", "provider", d.provider)
			return d.provider, nil
		}
		log.Debug("CI provider not detected", "provider", d.provider, "env", d.envVar)
	}
	return "", errors.WithHint(errUtils.ErrUnsupportedPlatform,
		"Set TRAVIS=true or APPVEYOR=true, or pass --platform")
}
