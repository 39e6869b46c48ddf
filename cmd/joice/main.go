// Package main provides the CLI entry point for joice.
package main

import (
	"os"
	"runtime/debug"
	"strings"

	"github.com/alexander-akhmetov/joice/internal/cli"
)

// Version information set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(resolveVersion())
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveVersion prefers ldflags values and falls back to the module and
// VCS information embedded by the go tool.
func resolveVersion() (string, string, string) {
	if version != "dev" {
		return version, commit, date
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}
	v := version
	if mv := info.Main.Version; mv != "" && mv != "(devel)" {
		v = strings.TrimPrefix(mv, "v")
	}
	c, d := vcsInfo(info.Settings)
	return v, c, d
}

// vcsInfo returns the short revision, marked -dirty for modified trees, and
// the commit time.
func vcsInfo(settings []debug.BuildSetting) (string, string) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	c := "unknown"
	if rev := vcs["vcs.revision"]; len(rev) >= 7 {
		c = rev[:7]
		if vcs["vcs.modified"] == "true" {
			c += "-dirty"
		}
	}

	d := "unknown"
	if t := vcs["vcs.time"]; t != "" {
		d = t
	}
	return c, d
}
