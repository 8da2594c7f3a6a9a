package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-cfg-bench/pkg/artifact"
	"github.com/l3aro/go-cfg-bench/pkg/cfg"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize a generated artifact",
	Long: `Decodes and validates a CFG artifact (msgpack or JSON, inferred from the
file extension) and prints a summary of its shape.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := artifact.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading artifact: %w", err)
		}

		stats := artifact.Summarize(graph)

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		printStats(graph, stats)
		return nil
	},
}

// printStats prints artifact information in human-readable format.
func printStats(graph *cfg.CFG, stats artifact.Stats) {
	fmt.Printf("=== CFG artifact ===\n")
	fmt.Printf("Entry point: function_%d\n", stats.EntryPoint)
	fmt.Printf("Functions: %d (%d leaves)\n", stats.Functions, stats.LeafFunctions)
	fmt.Printf("Code blocks: %d\n", stats.CodeBlocks)
	fmt.Printf("Code block bodies: %d\n", stats.Bodies)
	fmt.Printf("Conditional branches: %d\n", stats.Conditionals)
	fmt.Printf("Direct calls: %d\n", stats.DirectCalls)
	if stats.Prefetches > 0 {
		fmt.Printf("Code prefetches: %d\n", stats.Prefetches)
	}

	fmt.Printf("\nFunctions:\n")
	for i := range graph.Functions {
		fn := &graph.Functions[i]
		shape := "internal"
		if fn.IsLeaf() {
			shape = "leaf"
		}
		fmt.Printf("  function_%d (%s, %d blocks)\n", fn.ID, shape, len(fn.Instructions))
		for j := range fn.Instructions {
			block := &fn.Instructions[j]
			if block.Terminator == nil {
				fmt.Printf("    block %d: <no terminator>\n", block.ID)
				continue
			}
			t := block.Terminator
			switch t.Kind {
			case cfg.BranchReturn:
				fmt.Printf("    block %d: return\n", block.ID)
			case cfg.BranchDirectCall:
				fmt.Printf("    block %d: call function_%d\n", block.ID, t.Targets[0])
			case cfg.BranchConditionalDirect:
				fmt.Printf("    block %d: cond -> block %d (p=%v)\n", block.ID, t.Targets[0], t.TakenProbability[0])
			default:
				fmt.Printf("    block %d: %s\n", block.ID, t.Kind)
			}
		}
	}
}

func init() {
	inspectCmd.Flags().BoolP("json", "j", false, "Output summary as JSON")
	RootCmd.AddCommand(inspectCmd)
}
