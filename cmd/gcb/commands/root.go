// Package commands provides the CLI commands for the go-cfg-bench tool.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/l3aro/go-cfg-bench/internal/log"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gcb",
	Short: "go-cfg-bench - Synthetic CFG benchmark generation",
	Long: `go-cfg-bench synthesizes control flow graph benchmarks for exercising
instruction fetch, branch prediction, and code prefetch behavior.

Commands:
  generate    Generate a DFS instruction pointer chase benchmark
  inspect     Summarize a generated artifact
  init        Create a .gcb.yaml configuration interactively

Use "gcb [command] --help" for more information about a command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		log.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
