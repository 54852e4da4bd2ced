package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"plain scalar", "tests/test1.py", []string{"tests/test1.py"}},
		{"single quoted list", "['test1.py', 'test2.py']", []string{"test1.py", "test2.py"}},
		{"double quoted list", `["a", "b", "c"]`, []string{"a", "b", "c"}},
		{"unquoted flow list", "[a.py, b.py]", []string{"a.py", "b.py"}},
		{"empty list", "[]", []string{}},
		{"quoted scalar", "'test1.py'", []string{"test1.py"}},
		{"surrounding whitespace", "  ['x']  ", []string{"x"}},
		{"empty value", "", []string{}},
		{"blank value", "   ", []string{}},
		{"none literal", "None", []string{}},
		{"broken list falls back", "['a.py', 'b.py'", []string{"['a.py', 'b.py'"}},
		{"non string items fall back", "[1, 2]", []string{"[1, 2]"}},
		{"nested list falls back", "[['a']]", []string{"[['a']]"}},
		{"command with spaces", "python -m nose", []string{"python -m nose"}},
		{"escaped backslashes", `['C:\\tools\\setup.py']`, []string{`C:\tools\setup.py`}},
		{"escaped quote", `['it\'s.py']`, []string{"it's.py"}},
		{"other quote inside", `['echo "hi"', "it's"]`, []string{`echo "hi"`, "it's"}},
		{"unknown escape kept", `['C:\PYTHON36\python.exe']`, []string{`C:\PYTHON36\python.exe`}},
		{"known escape decoded", `['a\tb']`, []string{"a\tb"}},
		{"comma inside quotes", `['a, b', 'c']`, []string{"a, b", "c"}},
		{"escaped quoted scalar", `'C:\\tools\\ci.py'`, []string{`C:\tools\ci.py`}},
		{"unterminated item falls back", `['a.py]`, []string{`['a.py]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseList(tt.input))
		})
	}
}

func TestParseList_RoundTrip(t *testing.T) {
	lists := [][]string{
		{"a.py"},
		{"tests/test_one.py", "tests/test_two.py"},
		{"foo/extra", "docs", "examples/with space"},
		{`C:\tools\setup.py`, "it's.py", `say "hi"`},
	}
	for _, list := range lists {
		literal := "["
		for i, item := range list {
			if i > 0 {
				literal += ", "
			}
			escaped := strings.ReplaceAll(item, `\`, `\\`)
			literal += "'" + strings.ReplaceAll(escaped, "'", `\'`) + "'"
		}
		literal += "]"
		assert.Equal(t, list, ParseList(literal))
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"True", "true"} {
		assert.True(t, ParseBool(v), v)
	}
	for _, v := range []string{"TRUE", "yes", "1", "on", "false", "False", "", " true"} {
		assert.False(t, ParseBool(v), v)
	}
}
