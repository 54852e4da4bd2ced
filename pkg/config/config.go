// Package config locates and parses the project configuration file and the CLI settings.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	ini "gopkg.in/ini.v1"

	errUtils "github.com/pkgci/pkgci/errors"
	log "github.com/pkgci/pkgci/pkg/logger"
	"github.com/pkgci/pkgci/pkg/schema"
)

// FindConfigFile returns the absolute path of the first candidate that exists as a file.
func FindConfigFile(candidates []string) (string, error) {
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			log.Trace("Config candidate not found", "file", candidate)
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", err
		}
		return abs, nil
	}
	return "", errUtils.Build(errUtils.ErrConfigNotFound).
		WithContext("candidates", strings.Join(candidates, ",")).
		WithHintf("Create one of %s in the project root", strings.Join(candidates, ", ")).
		Err()
}

// LoadConfiguration reads the first existing candidate file and returns its sections.
func LoadConfiguration(candidates []string) (*schema.Configuration, error) {
	path, err := FindConfigFile(candidates)
	if err != nil {
		return nil, err
	}
	return ReadConfiguration(path)
}

// ReadConfiguration parses the INI file at path.
func ReadConfiguration(path string) (*schema.Configuration, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		IgnoreInlineComment:        true,
		SkipUnrecognizableLines:    false,
	}, path)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrConfigParse).
			WithCause(err).
			WithContext("file", path).
			Err()
	}

	sections := lo.FilterSliceToMap(file.Sections(), func(s *ini.Section) (string, map[string]string, bool) {
		// The implicit DEFAULT section only counts when something was written to it.
		keep := s.Name() != ini.DefaultSection || len(s.Keys()) > 0
		return s.Name(), s.KeysHash(), keep
	})

	log.Debug("Loaded configuration", "file", path, "sections", len(sections))

	return &schema.Configuration{Path: path, Sections: sections}, nil
}
