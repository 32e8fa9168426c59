// Package version holds the agentrouter version string.
package version

// Version is the current release version.
const Version = "1.0.0"

// String returns the version string.
func String() string {
	return Version
}
