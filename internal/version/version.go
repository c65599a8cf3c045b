// Package version describes the running rolodex build.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Info identifies a build. Fields are set through -ldflags at release time
// and filled from the embedded VCS stamp otherwise.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// New returns Info for the given link-time values, completing empty fields
// from the binary's build information when available.
func New(version, commit, date string) Info {
	info := Info{Version: version, Commit: commit, Date: date, Go: runtime.Version()}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = shortCommit(s.Value)
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		}
	}
	return info
}

// String formats the build as "v1.2.3 (commit: abc1234, built: 2024-01-15)".
func (i Info) String() string {
	v, commit, date := i.Version, i.Commit, i.Date
	if v == "" {
		v = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", v, commit, date)
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
