package ci

import (
	errUtils "github.com/pkgci/pkgci/errors"
)

// OS identifies a supported operating system family.
type OS string

const (
	Windows OS = "windows"
	Linux   OS = "linux"
	MacOS   OS = "macos"
)

// DetectOS maps a GOOS value onto an OS family.
func DetectOS(goos string) (OS, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "darwin":
		return MacOS, nil
	default:
		return "", errUtils.Build(errUtils.ErrUnsupportedOS).
			WithContext("os", goos).
			Err()
	}
}
