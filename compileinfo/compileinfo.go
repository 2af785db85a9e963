// Package compileinfo reports how the running binary was built, using the
// module and VCS stamps the Go toolchain embeds. Analyses get rerun months
// later against old summary files, so each tool announces its provenance on
// startup.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Commit == "" {
		return fmt.Sprintf("%s built with %s (no VCS stamp)", c.Package, c.GoVersion)
	}

	out := fmt.Sprintf("%s built with %s from commit %s (%s)", c.Package, c.GoVersion, c.Commit, c.CommitTime)
	if c.Modified {
		out += ", with uncommitted changes"
	}

	return out
}

func Get() CompileInfo {
	out := CompileInfo{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Package = bi.Path
	out.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

// PrintToStdErr announces the build on stderr, keeping stdout clean for
// summary output.
func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
