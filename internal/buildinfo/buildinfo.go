// Package buildinfo holds build-time metadata injected via -ldflags.
package buildinfo

// DefaultVersion is reported when no version was injected.
const DefaultVersion = "1.0.0"

// Version is the semantic version or tag for this build.
// Inject via: -X github.com/findmyprof/findmyprof-chatbot-go/internal/buildinfo.Version=...
var Version = ""

// Commit is the git commit SHA for this build.
// Inject via: -X github.com/findmyprof/findmyprof-chatbot-go/internal/buildinfo.Commit=...
var Commit = ""

// BuildDate is the RFC3339 build timestamp.
// Inject via: -X github.com/findmyprof/findmyprof-chatbot-go/internal/buildinfo.BuildDate=...
var BuildDate = ""

// VersionOrDefault returns Version, or DefaultVersion when it is empty.
func VersionOrDefault() string {
	if Version == "" {
		return DefaultVersion
	}
	return Version
}
