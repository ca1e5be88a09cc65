// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version is set at link time via `-ldflags -X github.com/acproxycam/acproxycam/buildvars.Version=...`.
// It will be empty for local or development builds.
var Version string

// Commit is the short git SHA, injected the same way as Version.
var Commit string

// AppName is the name printed by the console banner.
const AppName = "ACProxyCam"

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}
