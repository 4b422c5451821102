// Package main is the entry point for the depthchart CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/wexinc/depthchart/cmd/depthchart/cmd"
	"github.com/wexinc/depthchart/internal/version"
)

// Version information - will be set by build flags
var (
	buildVersion = "dev"
	commit       = "none"
	date         = "unknown"
)

func main() {
	if buildVersion != "dev" {
		version.Version, version.Commit, version.Date = buildVersion, commit, date
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, cmd.FormatError(err))
		os.Exit(1)
	}
}
