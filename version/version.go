// Package version identifies the build of the application. The version
// number is set by the makefile with the linker's -X flag. When it isn't set
// the revision information from the build is used instead.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "TestDMG"

// set by the linker. empty if the project was not built with the makefile
var number string

// set once by init()
var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version string is "unreleased" if the project was built from a
// repository without the makefile. It is "local" if there is no version
// number and no vcs information, which is the case with "go run ."
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns a string that can be used as a window title
func Title() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

// Summary returns a single line describing the application, version and
// revision. Suitable for usage information
func Summary() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s %s", ApplicationName, ver)
	}
	return fmt.Sprintf("%s %s [%s]", ApplicationName, ver, rev)
}

// vcsInfo returns the revision described by the build settings. the revision
// is suffixed with "+dirty" if the source was modified after the commit
func vcsInfo(settings []debug.BuildSetting) (rev string, vcs bool) {
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if rev == "" {
		return "no revision information", vcs
	}
	if dirty {
		rev = fmt.Sprintf("%s+dirty", rev)
	}
	return rev, vcs
}

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}

	var vcs bool
	revision, vcs = vcsInfo(settings)

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
