package buildinfo

import "strings"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// VersionBase returns the dotted release number shown on screen, without a
// leading "v" or any pre-release suffix. Development builds report 0.0.0.
func VersionBase() string {
	v := strings.TrimPrefix(Version, "v")
	if i := strings.IndexAny(v, "-+ "); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "dev" {
		return "0.0.0"
	}
	return v
}
