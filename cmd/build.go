package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/styletree/styletree/internal/build"
	"github.com/styletree/styletree/internal/config"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"b"},
	Short:   "Compile all configured units to CSS files",
	Long: `Compile every unit declared in the configuration to its CSS output file.
A failing unit is reported by name; the remaining units still compile and
are written.

Examples:
  styletree build                   # Compile all units
  styletree build --format minify   # Override the output format
  styletree build --config ci.yml   # Use an alternate config file`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if len(cfg.Units) == 0 {
		printInfo("No units configured. Declare units in .styletree.yml to get started.")
		return nil
	}

	result := build.New(cfg, newLogger()).Run(cmd.Context())
	printResult(result)

	if failed := result.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d units failed", failed, len(result.Reports))
	}
	return nil
}
