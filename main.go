package main

import (
	"fmt"
	"os"

	"github.com/styleforge/styleforge/cmd"
	"github.com/styleforge/styleforge/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var exitFunc = os.Exit

func run() int {
	// Fail early when the config location cannot be resolved
	if _, err := config.GetConfigPath(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: cannot resolve config path: %v\n", err)
		return 1
	}

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	exitFunc(run())
}
