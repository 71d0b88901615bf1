// Package settings carries build metadata and per-run options for tasklist.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "tasklist"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-dev",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the options of one invocation.
type Run struct {
	MinLogLevel int8
	ConfigFile  string
	NoColor     bool
}

// NewCliParams returns the defaults used when running from the command line.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
	}
}
