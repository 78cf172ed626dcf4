// Package main is the entry point for diffmark.
package main

import (
	"fmt"
	"os"

	"github.com/donaldgifford/diffmark/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd, opts := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "diffmark: %v\n", err)
		os.Exit(runner.ExitError)
	}
	os.Exit(opts.code)
}
