package generate

import (
	"fmt"
)

// AppVeyorFileName is the AppVeyor configuration file.
const AppVeyorFileName = ".appveyor.yml"

// AppVeyorOptions are the answers that shape .appveyor.yml.
type AppVeyorOptions struct {
	Versions []string
	Dist     Dist
	// X64 adds a 64-bit interpreter entry per version.
	X64       bool
	DriverURL string
}

// AppVeyorDocument returns the lines of .appveyor.yml.
func AppVeyorDocument(opts AppVeyorOptions) ([]string, error) {
	if err := ValidateVersions(opts.Versions, opts.Dist); err != nil {
		return nil, err
	}

	doc := []string{"environment:", "  matrix:"}
	for _, v := range opts.Versions {
		doc = append(doc, appveyorEntry(v, opts.Dist == DistSource, false)...)
		if opts.X64 {
			doc = append(doc, appveyorEntry(v, opts.Dist == DistSource, true)...)
		}
	}
	if opts.Dist == DistBoth {
		highest, err := HighestVersion(opts.Versions)
		if err != nil {
			return nil, err
		}
		doc = append(doc, appveyorEntry(highest, true, opts.X64)...)
	}

	doc = append(doc,
		"build: off",
		"before_test:",
		fmt.Sprintf("  - ps: Start-FileDownload '%s'", driverURL(opts.DriverURL)),
		`  - '%PYTHON%\python.exe -m pip install configparser -U'`,
		"test_script:",
		`  - '%PYTHON%\python.exe `+driverScript+`'`,
	)

	if err := ValidateDocument(AppVeyorFileName, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func appveyorEntry(version string, sdist, x64 bool) []string {
	path := `C:\PYTHON` + versionNumber(version)
	if x64 {
		path += "-x64"
	}
	entry := []string{fmt.Sprintf("    - PYTHON: '%s'", path)}
	if sdist {
		entry = append(entry, "      SDIST: 'true'")
	}
	return entry
}
