package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tokencss"
	"github.com/yacobolo/tokencss/internal/cssgen"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List registered themes",
	Long: `Load the default theme and every configured override and list them with
their token, component and style counts. The active variant is marked.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runThemes,
}

func init() {
	themesCmd.Flags().String("output-format", "", "Output format: text|json")
}

func runThemes(cmd *cobra.Command, _ []string) error {
	verbose := getBoolWithFallback("verbose", "verbose", false)
	log := newLogger(verbose, getBoolWithFallback("quiet", "quiet", false))
	defer func() { _ = log.Sync() }()

	config, err := buildConfig(log)
	if err != nil {
		return err
	}

	themes, err := tokencss.Themes(config)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if tokencss.DetermineOutputFormat(getStringWithFallback("output-format", "output-format", "")) == cssgen.OutputJSON {
		return tokencss.WriteThemesJSON(w, themes)
	}

	useColors := cssgen.ShouldUseColors(getBoolWithFallback("color", "color", false))
	for _, t := range themes {
		marker := " "
		name := t.Name
		if t.Active {
			marker = "*"
			name = cssgen.RenderStyle(cssgen.StyleGreen, name, useColors)
		}
		fmt.Fprintf(w, "%s %s  %d tokens, %d components, %d styles\n",
			marker, name, t.Tokens, t.Components, t.Styles)
	}
	return nil
}
