// Package version provides build information for the debugfixture binary.
package version

import "runtime/debug"

// These variables can be overridden at build time using ldflags:
// go build -ldflags "-X debugfixture/internal/version.Version=1.0.0 -X debugfixture/internal/version.Commit=abc123"
var (
	// Version is the semantic version of the fixture server
	Version = "2.0.6"

	// Commit is the git commit hash (set at build time)
	Commit = "unknown"

	// BuildDate is the build timestamp (set at build time)
	BuildDate = "unknown"
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildSettings(info.Settings)
	}
}

// applyBuildSettings fills Commit and BuildDate from the VCS stamp the go
// tool embeds. Values set through ldflags win.
func applyBuildSettings(settings []debug.BuildSetting) {
	for _, s := range settings {
		if s.Value == "" {
			continue
		}
		switch s.Key {
		case "vcs.revision":
			if Commit == "unknown" {
				Commit = s.Value
			}
		case "vcs.time":
			if BuildDate == "unknown" {
				BuildDate = s.Value
			}
		}
	}
}

// Full returns complete version information
func Full() string {
	return "debugfixture version " + Version + "\n" +
		"Commit: " + Commit + "\n" +
		"Built: " + BuildDate
}
