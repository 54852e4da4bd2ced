package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	errUtils "github.com/pkgci/pkgci/errors"
	"github.com/pkgci/pkgci/pkg/ci"
	"github.com/pkgci/pkgci/pkg/schema"
)

// ResolveWorkDir returns the absolute directory commands run in: the OS
// section working_dir, else package.working_dir, else the directory of the
// configuration file. Relative values are taken from the configuration file
// directory.
func ResolveWorkDir(cfg *schema.Configuration, family ci.OS) (string, error) {
	base, err := configDir(cfg)
	if err != nil {
		return "", err
	}

	dir := strings.TrimSpace(cfg.Get(string(family), schema.OptionWorkingDir, ""))
	if dir == "" {
		dir = strings.TrimSpace(cfg.Get(schema.SectionPackage, schema.OptionWorkingDir, ""))
	}
	if dir == "" {
		return base, nil
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	return filepath.Clean(dir), nil
}

func configDir(cfg *schema.Configuration) (string, error) {
	if cfg != nil && cfg.Path != "" {
		return filepath.Dir(cfg.Path), nil
	}
	return os.Getwd()
}

// checkWorkDir fails when dir is not an existing directory.
func checkWorkDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}
	b := errUtils.Build(errUtils.ErrStageFailed).
		WithContext("stage", StagePreparePlatform).
		WithContext("dir", dir).
		WithHint("Check working_dir in ci.ini")
	if err != nil {
		b = b.WithCause(err)
	} else {
		b = b.WithExplanationf("%s is not a directory", dir)
	}
	return b.Err()
}
