// Command uvforge scaffolds Python projects from folder templates: pick a UI
// framework and/or a project type, and it materializes the merged folder
// structure with starter file content on disk. Package installation and git
// setup stay with uv and git themselves; the command prints the package list
// it would hand to `uv add`.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "uvforge",
	Short:         "Scaffold Python projects from folder templates",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
