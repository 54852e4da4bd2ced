package ci

import (
	errUtils "github.com/pkgci/pkgci/errors"
)

type platformKey struct {
	provider Provider
	os       OS
}

// pythonCommands holds the interpreter invocation per provider and OS.
// TODO: map AppVeyor Ubuntu images once their interpreter path is settled.
var pythonCommands = map[platformKey]string{
	{AppVeyor, Windows}: `%PYTHON%\python.exe`,
	{TravisCI, Linux}:   "python",
	{TravisCI, MacOS}:   "$PYTHON",
}

// PythonCommand returns the interpreter invocation for the provider and OS.
// Unmapped combinations are a configuration error.
func PythonCommand(provider Provider, os OS) (string, error) {
	cmd, ok := pythonCommands[platformKey{provider, os}]
	if !ok {
		return "", errUtils.Build(errUtils.ErrInterpreterNotMapped).
			WithContext("provider", provider).
			WithContext("os", os).
			WithHint("Pass --python to choose the interpreter explicitly").
			Err()
	}
	return cmd, nil
}
