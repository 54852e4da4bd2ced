package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkgci/pkgci/pkg/ci"
)

func TestNormalizeExitCode_Windows(t *testing.T) {
	for _, raw := range []int{0, 1, 2, 255, 256, 3221225477} {
		assert.Equal(t, raw, NormalizeExitCode(ci.Windows, raw))
	}
}

func TestNormalizeExitCode_DecodesPackedStatus(t *testing.T) {
	for _, family := range []ci.OS{ci.Linux, ci.MacOS} {
		for code := 0; code <= 255; code++ {
			assert.Equal(t, code, NormalizeExitCode(family, EncodeExitStatus(code)), "family=%s code=%d", family, code)
		}
	}
}

func TestNormalizeExitCode_RawIsNotReturned(t *testing.T) {
	// A raw status of 256 is exit code 1, not 256.
	assert.Equal(t, 1, NormalizeExitCode(ci.Linux, 256))
	assert.Equal(t, 256, NormalizeExitCode(ci.Windows, 256))
}

func TestNormalizeExitCode_Signals(t *testing.T) {
	assert.Equal(t, 137, NormalizeExitCode(ci.Linux, 9))
	assert.Equal(t, 143, NormalizeExitCode(ci.Linux, 15))
	// Stopped by SIGSTOP (19): 0x137f.
	assert.Equal(t, 128+19, NormalizeExitCode(ci.Linux, 19<<8|0x7f))
}
