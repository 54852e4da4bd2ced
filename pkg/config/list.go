package config

import (
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/pkgci/pkgci/pkg/schema"
)

// noneLiteral is treated like an absent value.
const noneLiteral = "None"

// ParseList decodes a configured collection.
//
// Examples:
//
//	"tests/test1.py"               -> ["tests/test1.py"]
//	"['test1.py', 'test2.py']"     -> ["test1.py", "test2.py"]
//	"'test1.py'"                   -> ["test1.py"]
//	"" or "None"                   -> []
//
// A value that looks like a list literal but does not decode to a list of
// strings is returned as a single element.
func ParseList(value string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == noneLiteral {
		return []string{}
	}

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		if items, ok := decodeListLiteral(trimmed); ok {
			return items
		}
		return []string{value}
	}

	if unquoted, ok := unquote(trimmed); ok {
		return []string{unquoted}
	}

	return []string{value}
}

// ListOption parses an option with ParseList. Absent options give an empty list.
func ListOption(cfg *schema.Configuration, section, option string) []string {
	v, ok := cfg.Lookup(section, option)
	if !ok {
		return []string{}
	}
	return ParseList(v)
}

// ParseBool reports whether value is one of the truthy spellings "True" or "true".
func ParseBool(value string) bool {
	return value == "True" || value == "true"
}

// BoolOption parses an option with ParseBool. Absent options are false.
func BoolOption(cfg *schema.Configuration, section, option string) bool {
	v, _ := cfg.Lookup(section, option)
	return ParseBool(v)
}

func decodeListLiteral(literal string) ([]string, bool) {
	flow, ok := pythonToFlow(literal)
	if !ok {
		return nil, false
	}
	var raw []interface{}
	if err := yaml.Unmarshal([]byte(flow), &raw); err != nil {
		return nil, false
	}
	items := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		items = append(items, s)
	}
	return items, true
}

// pythonToFlow rewrites every quoted string of a Python literal as a YAML
// double-quoted scalar, so 'C:\\tools' and 'it\'s' decode the way Python
// reads them. Text outside quotes is kept as is.
func pythonToFlow(literal string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(literal); {
		c := literal[i]
		if c != '\'' && c != '"' {
			b.WriteByte(c)
			i++
			continue
		}
		value, end, ok := scanPythonString(literal, i)
		if !ok {
			return "", false
		}
		b.WriteString(strconv.Quote(value))
		i = end
	}
	return b.String(), true
}

// scanPythonString decodes the quoted string starting at s[start] and returns
// its value and the index just past the closing quote.
func scanPythonString(s string, start int) (string, int, bool) {
	quote := s[start]
	var b strings.Builder
	for i := start + 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == quote:
			return b.String(), i + 1, true
		case c == '\\' && i+1 < len(s):
			i++
			if r, ok := pythonEscapes[s[i]]; ok {
				b.WriteByte(r)
			} else {
				// Unknown escapes keep the backslash.
				b.WriteByte('\\')
				b.WriteByte(s[i])
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, false
}

var pythonEscapes = map[byte]byte{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
}

func unquote(s string) (string, bool) {
	if len(s) < 2 || (s[0] != '\'' && s[0] != '"') {
		return "", false
	}
	value, end, ok := scanPythonString(s, 0)
	if !ok || end != len(s) {
		return "", false
	}
	return value, true
}
