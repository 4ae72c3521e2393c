// Package version reports the name and build version of the program.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the program in window titles
// and terminal output
const ApplicationName = "MatrixPong"

// number is set by the linker for numbered releases
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the vcs revision and whether the build
// is a numbered release.
//
// A version of "unreleased" means the program was built from a vcs checkout
// without a version number. A version of "local" means there was no vcs
// information at all, which is usual with "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the application name with the version for releases, or with
// the revision otherwise.
func Title() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

func init() {
	version, revision = fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) (string, string) {
	var vcs, modified bool
	var rev string

	if ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case rev == "":
		rev = "no revision information"
	case modified:
		rev += "+dirty"
	}

	if number != "" {
		return number, rev
	}
	if vcs {
		return "unreleased", rev
	}
	return "local", rev
}
