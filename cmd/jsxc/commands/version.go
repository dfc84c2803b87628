package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version, Commit and Date are overridden at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewVersionCommand builds the version subcommand.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jsxc %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}
