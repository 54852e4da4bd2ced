package ci

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/pkgci/pkgci/errors"
	"github.com/pkgci/pkgci/pkg/schema"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected Provider
		wantErr  bool
	}{
		{"travis", map[string]string{"TRAVIS": "true"}, TravisCI, false},
		{"appveyor lower", map[string]string{"APPVEYOR": "true"}, AppVeyor, false},
		{"appveyor capitalized", map[string]string{"APPVEYOR": "True"}, AppVeyor, false},
		{"travis capitalized", map[string]string{"TRAVIS": "True"}, TravisCI, false},
		{"travis wins over appveyor", map[string]string{"TRAVIS": "true", "APPVEYOR": "true"}, TravisCI, false},
		{"falsy travis falls through", map[string]string{"TRAVIS": "false", "APPVEYOR": "True"}, AppVeyor, false},
		{"unrecognized truthy spelling", map[string]string{"TRAVIS": "1", "APPVEYOR": "yes"}, "", true},
		{"nothing set", map[string]string{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DetectProvider(envMap(tt.env))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errUtils.ErrUnsupportedPlatform))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider("appveyor")
	require.NoError(t, err)
	assert.Equal(t, AppVeyor, p)

	_, err = ParseProvider("circleci")
	assert.True(t, errors.Is(err, errUtils.ErrUnsupportedPlatform))

	assert.Equal(t, []Provider{TravisCI, AppVeyor}, Providers())
}

func TestDetectOS(t *testing.T) {
	tests := []struct {
		goos     string
		expected OS
		wantErr  bool
	}{
		{"windows", Windows, false},
		{"linux", Linux, false},
		{"darwin", MacOS, false},
		{"freebsd", "", true},
		{"plan9", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			os, err := DetectOS(tt.goos)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errUtils.ErrUnsupportedOS))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, os)
		})
	}
}

func TestPythonCommand(t *testing.T) {
	tests := []struct {
		provider Provider
		os       OS
		expected string
		wantErr  bool
	}{
		{AppVeyor, Windows, `%PYTHON%\python.exe`, false},
		{TravisCI, Linux, "python", false},
		{TravisCI, MacOS, "$PYTHON", false},
		{AppVeyor, Linux, "", true},
		{AppVeyor, MacOS, "", true},
		{TravisCI, Windows, "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider)+"/"+string(tt.os), func(t *testing.T) {
			cmd, err := PythonCommand(tt.provider, tt.os)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errUtils.ErrInterpreterNotMapped))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestDistKindFromEnv(t *testing.T) {
	assert.Equal(t, schema.DistSource, DistKindFromEnv(envMap(map[string]string{"SDIST": "true"})))
	assert.Equal(t, schema.DistBinary, DistKindFromEnv(envMap(map[string]string{"SDIST": "True"})))
	assert.Equal(t, schema.DistBinary, DistKindFromEnv(envMap(map[string]string{})))
}

func TestNewRunContext(t *testing.T) {
	cfg := &schema.Configuration{Sections: map[string]map[string]string{
		schema.SectionPackage: {schema.OptionName: "foo"},
	}}

	t.Run("detected", func(t *testing.T) {
		rc, err := NewRunContext(Environment{
			Getenv: envMap(map[string]string{"TRAVIS": "true", "SDIST": "true"}),
			GOOS:   "linux",
		}, cfg)
		require.NoError(t, err)
		assert.Equal(t, RunContext{
			Provider: TravisCI,
			OS:       Linux,
			Python:   "python",
			Dist:     schema.DistSource,
			Package:  "foo",
		}, rc)
	})

	t.Run("overrides", func(t *testing.T) {
		rc, err := NewRunContext(Environment{
			Getenv:           envMap(map[string]string{}),
			GOOS:             "linux",
			PlatformOverride: "appveyor",
			PythonOverride:   "python3",
		}, cfg)
		require.NoError(t, err)
		assert.Equal(t, AppVeyor, rc.Provider)
		assert.Equal(t, "python3", rc.Python)
		assert.Equal(t, schema.DistBinary, rc.Dist)
	})

	t.Run("unmapped interpreter", func(t *testing.T) {
		_, err := NewRunContext(Environment{
			Getenv: envMap(map[string]string{"APPVEYOR": "True"}),
			GOOS:   "linux",
		}, cfg)
		assert.True(t, errors.Is(err, errUtils.ErrInterpreterNotMapped))
	})

	t.Run("unsupported os", func(t *testing.T) {
		_, err := NewRunContext(Environment{
			Getenv: envMap(map[string]string{"TRAVIS": "true"}),
			GOOS:   "solaris",
		}, cfg)
		assert.True(t, errors.Is(err, errUtils.ErrUnsupportedOS))
	})

	t.Run("missing package name", func(t *testing.T) {
		_, err := NewRunContext(Environment{
			Getenv: envMap(map[string]string{"TRAVIS": "true"}),
			GOOS:   "linux",
		}, &schema.Configuration{})
		assert.True(t, errors.Is(err, errUtils.ErrMissingPackageName))
	})
}
