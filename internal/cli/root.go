package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitPending      = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "groom",
	Short: "AI guideline rewriter for Ballerina connector repositories",
	Long: "Groom walks a repository's ballerina/ sources, sends each target file " +
		"to an LLM provider together with a guideline document, and writes the " +
		"conforming rewrite back in place. Incremental mode skips files that have " +
		"not changed since their last recorded review.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(fullCmd)
	rootCmd.AddCommand(incrementalCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print groom version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "groom version %s\n", version)
	},
}
