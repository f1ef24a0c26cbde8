/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides build information for the resolvewith CLI.
package version

import (
	"runtime/debug"
)

var (
	// Version is the semantic version, set via -ldflags.
	Version = "dev"
	// Commit is the git commit hash, set via -ldflags.
	Commit = "unknown"
	// BuildDate is the build timestamp, set via -ldflags.
	BuildDate = "unknown"
)

// Get returns the version string, falling back to the module version
// recorded by `go install`.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// Info returns detailed build information.
func Info() map[string]string {
	return map[string]string{
		"version":   Get(),
		"commit":    Commit,
		"buildDate": BuildDate,
	}
}
