package seqhash

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
)

// set by -ldflags "-X github.com/glycerine/seqhash.NEAREST_GIT_TAG=..." at build time.
var LAST_GIT_COMMIT_HASH string
var NEAREST_GIT_TAG string
var GIT_BRANCH string
var GO_VERSION string

// CodeVersion is the short form carried in reports.
func CodeVersion() string {
	if NEAREST_GIT_TAG != "" {
		return NEAREST_GIT_TAG
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// VersionText is what -version prints for the named
// command. bi may be nil.
func VersionText(name string, bi *debug.BuildInfo) string {
	commit, tag, branch, gover := LAST_GIT_COMMIT_HASH, NEAREST_GIT_TAG, GIT_BRANCH, GO_VERSION
	modified := ""
	module := "github.com/glycerine/seqhash"
	if bi != nil {
		if bi.Main.Path != "" {
			module = bi.Main.Path
		}
		if tag == "" {
			tag = bi.Main.Version
		}
		if gover == "" {
			gover = bi.GoVersion
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.modified":
				if s.Value == "true" {
					modified = " (modified)"
				}
			}
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v (%v)\n", name, module)
	fmt.Fprintf(&b, "  version: %v\n", orUnknown(tag))
	fmt.Fprintf(&b, "  commit:  %v%v\n", orUnknown(commit), modified)
	fmt.Fprintf(&b, "  branch:  %v\n", orUnknown(branch))
	fmt.Fprintf(&b, "  go:      %v\n", orUnknown(gover))
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// VersionRequested reports whether any of args is
// -version or --version.
func VersionRequested(args []string) bool {
	for _, a := range args {
		if a == "-version" || a == "--version" {
			return true
		}
	}
	return false
}

// ExitIfVersionRequested prints the version of the
// named command to w and exits 1 when args ask for it,
// before any flag parsing happens.
func ExitIfVersionRequested(w io.Writer, name string, args []string) {
	if !VersionRequested(args) {
		return
	}
	bi, _ := debug.ReadBuildInfo()
	fmt.Fprint(w, VersionText(name, bi))
	os.Exit(1)
}
