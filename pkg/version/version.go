// Package version reports the build identity injected at link time with
//
//	go build -ldflags "-X github.com/flynn/okd/pkg/version.commit=..."
package version

import "fmt"

var commit, branch, tag, dirty string

// String returns the tag for clean tagged builds, "<commit> (<branch>)" for
// other release builds and "dev" when nothing was injected.
func String() string {
	if commit == "" || commit == "dev" {
		return "dev"
	}
	if Tagged() {
		return tag
	}
	c := commit
	if dirty == "true" {
		c += "+"
	}
	return fmt.Sprintf("%s (%s)", c, branch)
}

// Tagged reports whether the build is a clean tagged release.
func Tagged() bool {
	return tag != "" && tag != "none" && dirty == "false"
}
