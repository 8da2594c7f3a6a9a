package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-cfg-bench/internal/config"
	"github.com/l3aro/go-cfg-bench/internal/log"
	"github.com/l3aro/go-cfg-bench/pkg/artifact"
	"github.com/l3aro/go-cfg-bench/pkg/gen"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a DFS instruction pointer chase benchmark",
	Long: `Generates a synthetic CFG shaped as a binary function call tree. Every
internal function conditionally calls one of its two children with the
configured taken probability; leaves return immediately.

Flags override values from the configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfgFile, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if cmd.Flags().Changed("depth") {
			cfgFile.Depth, _ = cmd.Flags().GetInt("depth")
		}
		if cmd.Flags().Changed("branch-probability") {
			cfgFile.BranchProbability, _ = cmd.Flags().GetFloat64("branch-probability")
		}
		if cmd.Flags().Changed("inject-workload") {
			cfgFile.InjectWorkload, _ = cmd.Flags().GetBool("inject-workload")
		}
		if cmd.Flags().Changed("output") {
			cfgFile.Output, _ = cmd.Flags().GetString("output")
		}
		if cmd.Flags().Changed("format") {
			cfgFile.Format, _ = cmd.Flags().GetString("format")
		}

		format, err := artifact.ParseFormat(cfgFile.Format)
		if err != nil {
			return err
		}

		log.Info("generating DFS instruction pointer chase benchmark",
			"depth", cfgFile.Depth,
			"branch_probability", cfgFile.BranchProbability)

		generator, err := gen.NewDFSChase(gen.Options{
			Depth:             cfgFile.Depth,
			BranchProbability: cfgFile.BranchProbability,
			InjectWorkload:    cfgFile.InjectWorkload,
		})
		if err != nil {
			return fmt.Errorf("configuring generator: %w", err)
		}

		graph, err := generator.Generate()
		if err != nil {
			return fmt.Errorf("generating CFG: %w", err)
		}

		stats := artifact.Summarize(graph)
		log.Info("generation complete",
			"functions", stats.Functions,
			"leaves", stats.LeafFunctions,
			"blocks", stats.CodeBlocks,
			"entry", stats.EntryPoint)

		if cfgFile.Output == "" {
			return artifact.Encode(os.Stdout, graph, artifact.FormatJSON)
		}
		if err := artifact.WriteFile(cfgFile.Output, graph, format); err != nil {
			return fmt.Errorf("writing artifact: %w", err)
		}
		log.Info("artifact written", "path", cfgFile.Output, "format", format)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("depth", 20, "Depth of the function call tree")
	generateCmd.Flags().Float64("branch-probability", 0.5, "Branch taken probability in [0,1]")
	generateCmd.Flags().Bool("inject-workload", false, "Wire the arithmetic workload into call blocks")
	generateCmd.Flags().StringP("output", "o", "", "Artifact output path (default: JSON to stdout)")
	generateCmd.Flags().String("format", "msgpack", "Artifact format (msgpack or json)")
	generateCmd.Flags().String("config", "", "Config file path")
	RootCmd.AddCommand(generateCmd)
}
