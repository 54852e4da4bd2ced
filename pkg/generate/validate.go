package generate

import (
	"strings"

	"github.com/goccy/go-yaml"

	errUtils "github.com/pkgci/pkgci/errors"
)

// ValidateDocument parses the lines as YAML and fails with ErrInvalidDocument
// when they do not form a mapping.
func ValidateDocument(name string, lines []string) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(strings.Join(lines, "\n")), &doc); err != nil {
		return errUtils.Build(errUtils.ErrInvalidDocument).
			WithCause(err).
			WithContext("file", name).
			Err()
	}
	if len(doc) == 0 {
		return errUtils.Build(errUtils.ErrInvalidDocument).
			WithContext("file", name).
			WithExplanation("document is empty").
			Err()
	}
	return nil
}
