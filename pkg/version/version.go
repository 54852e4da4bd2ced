// Package version holds the build version of pkgci.
package version

// Version is set at build time with -ldflags "-X github.com/pkgci/pkgci/pkg/version.Version=1.2.3".
var Version = "0.0.0-dev"
