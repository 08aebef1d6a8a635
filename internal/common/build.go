package common

import (
	"fmt"
	"runtime/debug"
)

// Version and GitCommit can be set via ldflags at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// GetModuleBuildInfo returns the version and VCS revision the binary was
// built from.
func GetModuleBuildInfo() (string, string, bool) {
	if Version != "dev" {
		return Version, GitCommit, true
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}

	gitCommit := GitCommit
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			gitCommit = setting.Value
			break
		}
	}

	return info.Main.Version, gitCommit, true
}

// GetVersion formats the build info for display.
func GetVersion() string {
	version, gitCommit, ok := GetModuleBuildInfo()
	if !ok {
		return "unknown"
	}
	if len(gitCommit) > 8 {
		gitCommit = gitCommit[:8]
	}
	return fmt.Sprintf("%s (git: %s)", version, gitCommit)
}
