package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tokencss"
	"github.com/yacobolo/tokencss/internal/cssgen"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Show the resolved style for a component or style path",
	Long: `Resolve a style path such as "button", "button.icon" or "card" against
the active theme and print the declarations grouped by property category,
followed by state and media overrides.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("variant", "", "Component variant to apply")
}

func runInspect(cmd *cobra.Command, args []string) error {
	verbose := getBoolWithFallback("verbose", "verbose", false)
	log := newLogger(verbose, getBoolWithFallback("quiet", "quiet", false))
	defer func() { _ = log.Sync() }()

	config, err := buildConfig(log)
	if err != nil {
		return err
	}

	path := args[0]
	variant, _ := cmd.Flags().GetString("variant")

	res, err := tokencss.Inspect(config, path, variant)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	useColors := cssgen.ShouldUseColors(getBoolWithFallback("color", "color", false))
	cssgen.NewVerboseReporter(cmd.OutOrStdout(), useColors).PrintStyle(path, variant, res)
	return nil
}
