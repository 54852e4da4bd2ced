package generate

import (
	"fmt"
)

// TravisFileName is the Travis CI configuration file.
const TravisFileName = ".travis.yml"

// TravisOptions are the answers that shape .travis.yml.
type TravisOptions struct {
	// Sudo is set when the build installs system packages.
	Sudo bool
	// UbuntuDist pins the Ubuntu image, such as xenial. Empty leaves the default.
	UbuntuDist string
	Versions   []string
	Dist       Dist
	// MacOS adds a wheel build on macOS.
	MacOS     bool
	DriverURL string
}

// TravisDocument returns the lines of .travis.yml.
func TravisDocument(opts TravisOptions) ([]string, error) {
	if err := ValidateVersions(opts.Versions, opts.Dist); err != nil {
		return nil, err
	}

	doc := []string{"language: python"}
	if opts.Sudo {
		doc = append(doc, "sudo: required")
	}
	if opts.UbuntuDist != "" {
		doc = append(doc, "dist: "+opts.UbuntuDist)
	}

	doc = append(doc, "matrix:", "  include:")
	for _, v := range opts.Versions {
		doc = append(doc, travisEntry(v, opts.Dist == DistSource)...)
	}
	if opts.Dist == DistBoth {
		highest, err := HighestVersion(opts.Versions)
		if err != nil {
			return nil, err
		}
		doc = append(doc, travisEntry(highest, true)...)
	}
	if opts.MacOS {
		doc = append(doc,
			"    - os: osx",
			"      language: generic",
			"      env: PYTHON=python3 NUMBER='36' OS='darwin'",
		)
	}

	doc = append(doc,
		"before_install:",
		`  - 'if [[ "$TRAVIS_OS_NAME" == "linux" ]]; then export DISPLAY=:99.0; sh -e /etc/init.d/xvfb start; sleep 3; else brew upgrade python wget || echo "Installed Python and wget"; fi'`,
		fmt.Sprintf("  - wget %s -O %s", driverURL(opts.DriverURL), driverScript),
		"  - $PYTHON -m pip install configparser -U",
		"script:",
		"  - $PYTHON "+driverScript,
	)

	if err := ValidateDocument(TravisFileName, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func travisEntry(version string, sdist bool) []string {
	env := fmt.Sprintf(`      env: PYTHON=python NUMBER=%s OS="linux"`, versionNumber(version))
	if sdist {
		env += ` SDIST="true"`
	}
	return []string{
		"    - os: linux",
		fmt.Sprintf("      python: '%s'", version),
		env,
	}
}

func driverURL(url string) string {
	if url == "" {
		return DefaultDriverURL
	}
	return url
}
