// Package generate builds Travis CI and AppVeyor configuration files for a
// Python package from a few interactive answers.
package generate

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"

	errUtils "github.com/pkgci/pkgci/errors"
)

// DefaultDriverURL is where CI jobs download the driver script from.
const DefaultDriverURL = "https://raw.githubusercontent.com/RedFantom/python-package-ci/master/ci.py"

// driverScript is the file name the driver is saved as in CI jobs.
const driverScript = "ci.py"

// Dist selects which distributions the matrix builds.
type Dist string

const (
	DistSource Dist = "sdist"
	DistBinary Dist = "bdist"
	DistBoth   Dist = "both"
)

// Dists returns the accepted Dist values.
func Dists() []string {
	return []string{string(DistSource), string(DistBinary), string(DistBoth)}
}

// ParseVersions splits a comma separated answer into trimmed versions,
// dropping empty items.
func ParseVersions(answer string) []string {
	return lo.FilterMap(strings.Split(answer, ","), func(item string, _ int) (string, bool) {
		v := strings.TrimSpace(item)
		return v, v != ""
	})
}

// ValidateVersions checks the answered versions for dist. Any interpreter name
// such as pypy3 or nightly is accepted, except with DistBoth: the extra sdist
// entry needs the highest version, so every version must then be numeric
// (3.6, 3.10).
func ValidateVersions(versions []string, dist Dist) error {
	if len(versions) == 0 {
		return errUtils.Build(errUtils.ErrNoVersions).
			WithHint("Enter versions separated by a comma, for example 3.6,3.7").
			Err()
	}
	if dist != DistBoth {
		return nil
	}
	for _, v := range versions {
		if _, err := semver.NewVersion(v); err != nil {
			return errUtils.Build(errUtils.ErrInvalidVersion).
				WithCause(err).
				WithContext("version", v).
				WithHint("Building both distributions needs numeric versions such as 3.7").
				Err()
		}
	}
	return nil
}

// HighestVersion returns the numerically highest version as it was given,
// so "3.10" beats "3.9".
func HighestVersion(versions []string) (string, error) {
	if err := ValidateVersions(versions, DistBoth); err != nil {
		return "", err
	}
	return lo.MaxBy(versions, func(a, b string) bool {
		return semver.MustParse(a).GreaterThan(semver.MustParse(b))
	}), nil
}

// versionNumber turns 3.6 into 36.
func versionNumber(version string) string {
	return strings.ReplaceAll(version, ".", "")
}
