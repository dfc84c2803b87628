// Command jsxc is the local CLI driver for the compiler: it compiles
// files/globs, prints diagnostics, and can watch a project directory for
// changes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcrobe/jsxc/cmd/jsxc/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsxc",
		Short: "Compile JSX into framework runtime calls",
		Long: `jsxc rewrites JSX trees in JS/TSX source files into direct calls against a
fine-grained reactive runtime, either for the DOM (client) or for server
rendering.

Commands:
  transform   Compile one or more files/globs
  watch       Recompile a project's files as they change
  version     Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewTransformCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
