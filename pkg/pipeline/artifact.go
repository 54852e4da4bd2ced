package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	errUtils "github.com/pkgci/pkgci/errors"
)

// DistDir is where setup.py places built packages.
const DistDir = "dist"

var artifactSuffixes = []string{".whl", ".tar.gz"}

// FindArtifact returns the built wheel or source archive in dir/dist, relative
// to dir. Candidates are sorted by name and the first one wins.
func FindArtifact(dir string) (string, error) {
	entries, err := os.ReadDir(filepath.Join(dir, DistDir))
	if err != nil {
		return "", errUtils.Build(errUtils.ErrArtifactNotFound).
			WithCause(err).
			WithContext("stage", StageBuild).
			Err()
	}

	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return e.Name(), !e.IsDir() && isArtifact(e.Name())
	})
	if len(names) == 0 {
		return "", errUtils.Build(errUtils.ErrArtifactNotFound).
			WithContext("stage", StageBuild).
			WithContext("dir", filepath.Join(dir, DistDir)).
			WithHint("Check that setup.py builds a wheel or an sdist into dist/").
			Err()
	}
	return filepath.Join(DistDir, names[0]), nil
}

func isArtifact(name string) bool {
	return lo.SomeBy(artifactSuffixes, func(suffix string) bool {
		return strings.HasSuffix(name, suffix)
	})
}

// deleteTarget resolves a configured delete entry inside workDir. Entries that
// are absolute, point at workDir itself or leave it are rejected.
func deleteTarget(workDir, entry string) (string, error) {
	unsafe := func() error {
		return errUtils.Build(errUtils.ErrUnsafeDeletePath).
			WithContext("stage", StageDelete).
			WithContext("path", entry).
			WithHint("Delete entries must be relative paths below the working directory").
			Err()
	}

	if strings.TrimSpace(entry) == "" || filepath.IsAbs(entry) || filepath.VolumeName(entry) != "" {
		return "", unsafe()
	}

	target := filepath.Join(workDir, entry)
	rel, err := filepath.Rel(workDir, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", unsafe()
	}
	return target, nil
}
