package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/l3aro/go-cfg-bench/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create gcb configuration interactively",
	Long: `Guides you through setting up gcb configuration step by step.
Writes a .gcb.yaml file with default generation parameters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func runInit() error {
	cfg := config.DefaultConfig()

	depth := strconv.Itoa(cfg.Depth)
	probability := strconv.FormatFloat(cfg.BranchProbability, 'f', -1, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Call tree depth").
				Description("Depth of the generated function call tree").
				Placeholder(depth).
				Value(&depth).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("depth must be a positive integer")
					}
					return nil
				}),
			huh.NewInput().
				Title("Branch taken probability").
				Description("Probability in [0,1] for generated conditional branches").
				Placeholder(probability).
				Value(&probability).
				Validate(func(s string) error {
					p, err := strconv.ParseFloat(s, 64)
					if err != nil || p < 0 || p > 1 {
						return fmt.Errorf("probability must be a number in [0,1]")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Artifact format").
				Options(
					huh.NewOption("msgpack (compact)", "msgpack"),
					huh.NewOption("JSON (human-readable)", "json"),
				).
				Value(&cfg.Format),
			huh.NewConfirm().
				Title("Inject arithmetic workload into call blocks?").
				Value(&cfg.InjectWorkload),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	cfg.Depth, _ = strconv.Atoi(depth)
	cfg.BranchProbability, _ = strconv.ParseFloat(probability, 64)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(".gcb.yaml"); err != nil {
		return err
	}

	fmt.Println("Configuration written to .gcb.yaml")
	return nil
}

func init() {
	RootCmd.AddCommand(initCmd)
}
