package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X .../internal/app.Version=1.2.0". When Commit is left
// unset, the VCS revision stamped by the go tool is used instead.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version line printed by --version and logged at startup.
func BuildVersion() string {
	return formatVersion(Version, commitOrVCS(Commit), BuildTime)
}

func formatVersion(version, commit, built string) string {
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func commitOrVCS(commit string) string {
	if commit != "unknown" && commit != "" {
		return commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return "unknown"
}
