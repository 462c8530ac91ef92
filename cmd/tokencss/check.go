package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tokencss"
	"github.com/yacobolo/tokencss/internal/cssgen"
)

var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check <file.css>",
	Short: "Check a CSS file for structural problems",
	Long: `Verify that a CSS file has balanced braces and no empty rule bodies.
Problems are reported as file:line:col with the offending source line.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("print-lines", true, "Show source lines with problems")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := cssgen.ShouldUseColors(getBoolWithFallback("color", "color", false))

	content, err := tokencss.Check(path)
	if err == nil {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cssgen.RenderStyle(cssgen.StyleGreen, "OK", useColors), path)
		}
		return nil
	}

	var verr *cssgen.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	if !quiet {
		reporter := cssgen.NewReporter(cmd.OutOrStdout(), cssgen.ReporterConfig{
			UseColors:        useColors,
			PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		})
		reporter.PrintValidation(path, content, err)
		fmt.Fprintln(cmd.OutOrStdout(), cssgen.RenderStyle(cssgen.StyleRed, "1 problem found", useColors))
	}
	return errCheckFailed
}
