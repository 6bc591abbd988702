package main

import (
	"github.com/spf13/cobra"

	uvforge "github.com/uvforge/go-uvforge"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in framework and project-type templates",
	Run: func(cmd *cobra.Command, _ []string) {
		c := uvforge.DefaultCatalog()

		cmd.Println("UI frameworks:")
		for _, name := range c.Frameworks() {
			cmd.Printf("  %s\n", name)
		}
		cmd.Println("Project types:")
		for _, name := range c.ProjectTypes() {
			cmd.Printf("  %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
