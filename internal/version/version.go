// Package version holds the namegen release version.
// Format: major.minor.patch[-prerelease][+build]
package version

// NamegenVersion is reported by `namegen --version`.
const NamegenVersion = "0.3.0"
