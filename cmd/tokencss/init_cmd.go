package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tokencss.yaml config file",
	Long:  `Create a .tokencss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# tokencss configuration

# Shared settings
verbose: false
quiet: false
color: false
output-format: text       # text | json

# Themes
theme:
  path: theme             # file or directory of *.yaml, tokens.yaml first
  variant: default
  overrides:
    dark: theme/dark

# Style and theme caching
cache:
  enabled: true
  duration: 30m

# Generation settings
generate:
  scan:
    - "**/*.templ"
    - "**/*.html"
  output: web/static/css/tokens.css
  states: true
  schema-media: false
  strict: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
