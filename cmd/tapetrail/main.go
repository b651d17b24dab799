// Package main provides the entry point for the tapetrail CLI tool.
package main

import (
	"github.com/tapetrail/tapetrail/cmd/tapetrail/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
