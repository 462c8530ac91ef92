package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tokencss",
	Short: "CSS generator for YAML design token themes",
	Long: `Resolve component styles from YAML token themes and emit only the CSS
that your templates actually use. Theme overrides are layered on top of the
default theme and can be switched by variant name.`,
	// Default behavior: run generate when no subcommand is given.
	// loadConfig is called here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".tokencss.yaml", "Config file path")
	pf.String("theme-path", "", "Default theme file or directory")
	pf.String("theme-variant", "", "Theme variant to activate")
	pf.StringSlice("override", nil, "Theme override as name=path (repeatable)")
	pf.Bool("cache-enabled", true, "Cache theme loads and style lookups")
	pf.Duration("cache-duration", 0, "Lifetime of cached entries")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
