package generate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/pkgci/pkgci/errors"
)

func newTestPrompter(input string) (*LinePrompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewLinePrompter(strings.NewReader(input), &out), &out
}

func TestLinePrompter_Confirm(t *testing.T) {
	tests := []struct {
		input    string
		def      bool
		expected bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"N\n", true, false},
		{"\n", false, false},
		{"\n", true, true},
		{"maybe\ny\n", false, true},
		{"y", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)
			ok, err := p.Confirm("Continue?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}

	p, out := newTestPrompter("\n")
	_, err := p.Confirm("Continue?", false)
	require.NoError(t, err)
	assert.Equal(t, "Continue? (y/n) [n]: ", out.String())
}

func TestLinePrompter_Select(t *testing.T) {
	p, out := newTestPrompter("zip\n\n")
	v, err := p.Select("Dist?", Dists(), "both")
	require.NoError(t, err)
	assert.Equal(t, "both", v)
	assert.Contains(t, out.String(), "Dist? (sdist,bdist,both) [both]: ")
	assert.Contains(t, out.String(), "Invalid answer")
}

func TestLinePrompter_TooManyAttempts(t *testing.T) {
	p, _ := newTestPrompter(strings.Repeat("zip\n", 10))
	p.MaxAttempts = 3

	_, err := p.Select("Dist?", Dists(), "both")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUtils.ErrTooManyAttempts))
}

func TestLinePrompter_EOF(t *testing.T) {
	p, _ := newTestPrompter("")
	_, err := p.Input("Version", nil)
	assert.True(t, errors.Is(err, errUtils.ErrUserAborted))
}

func TestLinePrompter_List(t *testing.T) {
	p, _ := newTestPrompter(" , \n3.x\n3.6, 3.7\n")
	versions, err := p.List("Versions", func(v []string) error { return ValidateVersions(v, DistBoth) })
	require.NoError(t, err)
	assert.Equal(t, []string{"3.6", "3.7"}, versions)
}

func TestLinePrompter_Input(t *testing.T) {
	p, _ := newTestPrompter("\nxenial\n")
	v, err := p.Input("Version", requireValue)
	require.NoError(t, err)
	assert.Equal(t, "xenial", v)
}
