package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tokencss"
	"github.com/yacobolo/tokencss/internal/cssgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate CSS for the classes used in templates",
	Long: `Scan templates for class references, resolve each class against the
active theme and write the matching CSS rules. Responsive prefixes such as
md:card are emitted inside the matching media query.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("scan", nil, "Glob patterns for files to scan for class references")
	f.StringP("output", "o", "", "CSS output file (default: stdout)")
	f.Bool("states", true, "Emit :state rules")
	f.Bool("schema-media", false, "Emit media rules declared in the theme")
	f.Bool("strict", false, "Fail when a token reference cannot be resolved")
	f.String("output-format", "", "Summary format: text|json")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	quiet := getBoolWithFallback("quiet", "quiet", false)
	verbose := getBoolWithFallback("verbose", "verbose", false)

	log := newLogger(verbose, quiet)
	defer func() { _ = log.Sync() }()

	config, err := buildConfig(log)
	if err != nil {
		return err
	}

	result, err := tokencss.Generate(config)
	if err != nil {
		if result != nil && errors.Is(err, tokencss.ErrUnresolvedTokens) && !quiet {
			_ = writeSummary(cmd, result, verbose)
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	// CSS goes to stdout when no output file is set, so the summary moves to stderr
	if config.OutputPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.CSS)
	}

	if quiet {
		return nil
	}
	return writeSummary(cmd, result, verbose)
}

func writeSummary(cmd *cobra.Command, result *tokencss.GenerateResult, verbose bool) error {
	w := cmd.OutOrStdout()
	if result.Summary.OutputPath == "" {
		w = cmd.ErrOrStderr()
	}

	format := tokencss.DetermineOutputFormat(getStringWithFallback("output-format", "output-format", ""))
	return tokencss.WriteOutput(w, result, tokencss.OutputOptions{
		Format:    format,
		Verbose:   verbose,
		UseColors: cssgen.ShouldUseColors(getBoolWithFallback("color", "color", false)),
	})
}
