// Package main is the entry point for the omniexport CLI
package main

import (
	"os"

	"github.com/omnivore-tools/omniexport/cmd"
	"github.com/omnivore-tools/omniexport/internal/output"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(output.ExitCode(err))
	}
}
