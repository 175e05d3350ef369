package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version
	commit  = ""    // git commit SHA
	date    = ""    // build timestamp
)

// SetVersion sets the build information printed by the version command.
// main injects these via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// versionCommand creates the version command.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("eisla %s\n", version)
			if commit != "" {
				fmt.Printf("commit: %s\n", commit)
			}
			if date != "" {
				fmt.Printf("built:  %s\n", date)
			}
		},
	}
}
